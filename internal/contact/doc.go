// Package contact delivers messages from the contact form.
//
// A [Form] validates the visitor's input, posts it to an EmailJS-compatible
// service through [Client] and falls back to a mailto link opened by an
// [Opener] when the service is unconfigured or fails. Every outcome is a
// [Result] that frontends show on the send button for [ResetAfter].
package contact
