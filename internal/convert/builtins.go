package convert

// registerBuiltins installs the default converter set. Plugins may replace
// any node converter by re-registering its kind (last writer wins) or
// out-prioritize any type converter.
func registerBuiltins(c *Converter) {
	c.nodes.RegisterConverter(fileConverter{})
	c.nodes.RegisterConverter(functionConverter{})
	c.nodes.RegisterConverter(typeSpecConverter{})
	c.nodes.RegisterConverter(valueSpecConverter{})

	c.types.Register(universeIdentConverter{})
	c.types.Register(intrinsicConverter{})
	c.types.Register(typeParamConverter{})
	c.types.Register(referenceConverter{})
	c.types.Register(pointerConverter{})
	c.types.Register(sequenceConverter{})
	c.types.Register(mapConverter{})
	c.types.Register(chanConverter{})
	c.types.Register(funcTypeConverter{})
	c.types.Register(unionConverter{})
	c.types.Register(interfaceConverter{})
	c.types.Register(fallbackConverter{})
}
