package planner

import "github.com/wippyai/xtp-cpp-bindgen/schema"

// stringProps returns n string properties, 16 bytes each.
func stringProps(n int) []*schema.Property {
	props := make([]*schema.Property, n)
	for i := range props {
		props[i] = schema.Prop(string(rune('a'+i)), schema.String())
	}
	return props
}

// big128 sits exactly on the large threshold.
func big128() *schema.Type {
	return schema.Object("Big128", stringProps(8)...)
}

// big129 is one byte above the large threshold.
func big129() *schema.Type {
	return schema.Object("Big129", append(stringProps(8), schema.Prop("flag", schema.Boolean()))...)
}

// writeParams is a 32 byte object.
func writeParams() *schema.Type {
	return schema.Object("writeParams",
		schema.Prop("key", schema.String()),
		schema.Prop("value", schema.Buffer()),
	)
}

// pair is an 8 byte object.
func pair() *schema.Type {
	return schema.Object("pair",
		schema.Prop("a", schema.Int32()),
		schema.Prop("b", schema.Int32()),
	)
}
