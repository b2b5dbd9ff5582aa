package dsl

import (
	"context"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/i18n"
)

type unionSchema struct {
	options []valibot.AnySchema
	async   bool
}

// Union returns a schema that tries each option once, in declaration order,
// and succeeds with the first match. An option is invoked exactly once,
// never re-parsed speculatively, and on exhaustion the returned Issue
// carries every option's issues nested under Issues so a caller can see
// why each candidate was rejected.
func Union(options ...valibot.AnySchema) valibot.Schema[any] {
	u := &unionSchema{options: options}
	for _, o := range options {
		if o.Async() {
			u.async = true
		}
	}
	return u
}

func (u *unionSchema) Kind() string { return "union" }
func (u *unionSchema) Async() bool  { return u.async }

func (u *unionSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[any] {
	var nested valibot.Issues
	for _, opt := range u.options {
		res := opt.Parse(info, input)
		if res.IsOk() {
			return res
		}
		nested = valibot.AppendIssues(nested, res.Issues()...)
	}
	vinfo := info.ToValidateInfo(valibot.ReasonType, "")
	return valibot.Err[any](valibot.Issues{{
		Reason:     vinfo.Reason,
		Validation: valibot.ValidationUnion,
		Message:    i18n.T(valibot.ValidationUnion, nil),
		Input:      input,
		Path:       vinfo.Path,
		Issues:     nested,
	}})
}

func (u *unionSchema) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[any] {
	var nested valibot.Issues
	for _, opt := range u.options {
		var res valibot.Result[any]
		if opt.Async() {
			res = opt.ParseAsync(ctx, info, input)
		} else {
			res = opt.Parse(info, input)
		}
		if res.IsOk() {
			return res
		}
		nested = valibot.AppendIssues(nested, res.Issues()...)
	}
	vinfo := info.ToValidateInfo(valibot.ReasonType, "")
	return valibot.Err[any](valibot.Issues{{
		Reason:     vinfo.Reason,
		Validation: valibot.ValidationUnion,
		Message:    i18n.T(valibot.ValidationUnion, nil),
		Input:      input,
		Path:       vinfo.Path,
		Issues:     nested,
	}})
}

type discriminatedUnionSchema struct {
	discriminator string
	mapping       map[string]valibot.Schema[map[string]any]
}

// DiscriminatedUnion returns a union over object schemas that dispatches on
// the value of a single discriminator key instead of trying every option.
// It is an additional, faster-dispatch sibling of Union for the common case
// where every option is an Object with a literal tag field.
func DiscriminatedUnion(discriminator string, mapping map[string]valibot.Schema[map[string]any]) valibot.Schema[map[string]any] {
	return &discriminatedUnionSchema{discriminator: discriminator, mapping: mapping}
}

func (d *discriminatedUnionSchema) Kind() string { return "union" }
func (d *discriminatedUnionSchema) Async() bool  { return false }

func (d *discriminatedUnionSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[map[string]any] {
	m, ok := input.(map[string]any)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonObject, "")
		return valibot.Err[map[string]any](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	tagInfo := info.WithPathItem(valibot.ObjectKeyItem(m, d.discriminator, m[d.discriminator]))
	tag, ok := m[d.discriminator].(string)
	if !ok {
		vinfo := tagInfo.ToValidateInfo(valibot.ReasonObject, "")
		return valibot.Err[map[string]any](valibot.Issues{valibot.NewIssue(vinfo, valibot.ValidationDiscriminator, i18n.T(valibot.ValidationDiscriminator, nil), m[d.discriminator])})
	}
	schema, ok := d.mapping[tag]
	if !ok {
		vinfo := tagInfo.ToValidateInfo(valibot.ReasonObject, "")
		return valibot.Err[map[string]any](valibot.Issues{valibot.NewIssue(vinfo, valibot.ValidationDiscriminator, i18n.T(valibot.ValidationDiscriminator, nil), tag)})
	}
	return schema.Parse(info, input)
}
