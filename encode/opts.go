package encode

type EncodeOption func(*EncState)

// EncodeComponents selects the data component bracket form for the
// top-level compound: [key=value,...] instead of {key:value,...}.
func EncodeComponents(v bool) EncodeOption {
	return func(es *EncState) { es.components = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
