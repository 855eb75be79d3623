// Package encode serializes IR nodes to SNBT text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "id", Val: ir.FromString("minecraft:stone")},
//	    {Key: "Count", Val: ir.FromByte(3)},
//	})
//	out, err := encode.String(node)
//	// {id:"minecraft:stone",Count:3b}
//
//	out, err = encode.String(node, encode.EncodeComponents(true))
//	// [id="minecraft:stone",Count=3b]
//
// The component bracket form applies only to the top-level compound;
// compounds nested in lists or other compounds always render in brace
// form.
//
// # Related Packages
//
//   - github.com/ProjectUnified/CraftItem/ir - IR representation
//   - github.com/ProjectUnified/CraftItem/parse - Parse SNBT text to IR
package encode
