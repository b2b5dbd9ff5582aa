// Package i18n supplies the default, overridable human-readable message for
// each validation tag a schema or pipe action can emit.
package i18n

// Translator retrieves a localized message for a validation tag. data
// provides optional metadata to embed in the message (e.g. "min", "max").
type Translator interface {
	Message(validation string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(validation string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch validation {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "union":
			return "どの候補にも一致しません"
		case "non_nullable":
			return "null は許可されません"
		case "non_optional":
			return "値が必要です"
		case "non_nullish":
			return "値が必要です (null/undefined不可)"
		case "min_length":
			return "短すぎます"
		case "max_length":
			return "長すぎます"
		case "length":
			return "長さが一致しません"
		case "min_value":
			return "小さすぎます"
		case "max_value":
			return "大きすぎます"
		case "pattern":
			return "パターンに一致しません"
		case "email":
			return "メールアドレスの形式が不正です"
		case "url":
			return "URLの形式が不正です"
		case "uuid":
			return "UUIDの形式が不正です"
		case "emoji":
			return "絵文字が必要です"
		case "integer":
			return "整数である必要があります"
		case "multiple_of":
			return "倍数ではありません"
		case "finite":
			return "有限数である必要があります"
		case "luhn":
			return "チェックサムが不正です"
		case "starts_with":
			return "接頭辞が一致しません"
		case "ends_with":
			return "接尾辞が一致しません"
		case "includes":
			return "部分文字列が見つかりません"
		case "discriminator":
			return "判別子が不正です"
		}
	default: // "en"
		switch validation {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "union":
			return "no variant matched"
		case "non_nullable":
			return "null is not allowed"
		case "non_optional":
			return "value is required"
		case "non_nullish":
			return "value is required (null/undefined not allowed)"
		case "min_length":
			return "too short"
		case "max_length":
			return "too long"
		case "length":
			return "length does not match"
		case "min_value":
			return "too small"
		case "max_value":
			return "too big"
		case "pattern":
			return "does not match pattern"
		case "email":
			return "invalid email"
		case "url":
			return "invalid url"
		case "uuid":
			return "invalid uuid"
		case "emoji":
			return "expected emoji"
		case "integer":
			return "expected integer"
		case "multiple_of":
			return "not a multiple of the required step"
		case "finite":
			return "expected a finite number"
		case "luhn":
			return "failed checksum"
		case "starts_with":
			return "does not start with required prefix"
		case "ends_with":
			return "does not end with required suffix"
		case "includes":
			return "does not include required substring"
		case "discriminator":
			return "invalid discriminator"
		}
	}
	return validation
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given validation tag using the current
// Translator.
func T(validation string, data map[string]string) string { return currentTranslator.Message(validation, data) }
