// Package model defines the form document consumed by rendering clients: a
// Form aggregate holding an ordered sequence of typed fields plus an optional
// label dictionary. Fields form a closed family discriminated by their `type`
// string (inputs, number inputs, text areas, checkboxes, lists, buttons,
// captions and a base variant for custom types).
//
// Every type in the package serialises to canonical JSON: properties are
// emitted in a fixed rank order (identity properties first, variant
// properties next, bulk payloads such as `value`, `items` and `fields` last),
// unset optional attributes are omitted rather than written as null, and
// `required`, `disabled` and `labels` are dropped when they hold their default.
// `checked` on list items and checkboxes is always written. Output is
// deterministic, so snapshots can be compared byte for byte.
//
// Nothing in this package validates field values; `required`, `pattern`,
// `min`, `max` and `step` are hints for the client.
package model
