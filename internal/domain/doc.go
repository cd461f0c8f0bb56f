// Package domain contains shared domain types used across the form
// sub-packages. The phone mask lives in domain/phone and the form model
// (fields, visual states, submission gate) in domain/form. This root package
// holds sentinel errors and the field-level validation error type.
package domain
