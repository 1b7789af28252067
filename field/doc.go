// Package field declares how specification objects expose their fields
// to serialization.
//
// Each object type lists its fields explicitly, in output order:
//
//	func (c *Contact) Fields() []field.Field {
//		return []field.Field{
//			{Name: "Name", Value: field.OmitZero(c.Name)},
//			{Name: "URL", Value: field.OmitZero(c.URL), Meta: field.Meta{SpecName: "url"}},
//		}
//	}
//
// A field whose value is [Skip] is left out of the output. [Skippable]
// wraps values for which the zero value is meaningful, so that absent,
// present-and-zero and present-and-null can all be told apart.
package field
