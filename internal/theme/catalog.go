package theme

// builtins is the shipped theme catalog. The first theme of each category
// doubles as that category's fallback.
var builtins = []*Theme{
	// minimal
	{
		Name: "minimal-clean", Category: "minimal",
		BackgroundColor: "#ffffff", TextColor: "#2d3436", AccentColor: "#0984e3",
		TitleFont: Font{56, "Helvetica Neue"}, ContentFont: Font{28, "Helvetica Neue"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 260},
		Decorations: []string{"thin rule under title"},
	},
	{
		Name: "minimal-ink", Category: "minimal",
		BackgroundColor: "#fafafa", TextColor: "#111111", AccentColor: "#e17055",
		TitleFont: Font{58, "Georgia"}, ContentFont: Font{28, "Georgia"},
		TitlePosition: Point{640, 140}, ContentPosition: Point{150, 270},
		Decorations: []string{"corner brush stroke"},
	},
	{
		Name: "minimal-frost", Category: "minimal",
		BackgroundColor: "#f1f6f9", TextColor: "#394867", AccentColor: "#9ba4b4",
		TitleFont: Font{54, "Helvetica Neue"}, ContentFont: Font{27, "Helvetica Neue"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 250},
		Decorations: []string{"pale side band"},
	},
	{
		Name: "minimal-dot", Category: "minimal",
		BackgroundColor: "#ffffff", TextColor: "#333333", AccentColor: "#fdcb6e",
		TitleFont: Font{56, "Futura"}, ContentFont: Font{28, "Futura"},
		TitlePosition: Point{640, 120}, ContentPosition: Point{140, 250},
		Decorations: []string{"dot grid corner"},
	},

	// corporate
	{
		Name: "corporate-navy", Category: "corporate",
		BackgroundColor: "#1b2a4a", TextColor: "#f5f6fa", AccentColor: "#f0a500",
		TitleFont: Font{54, "Arial"}, ContentFont: Font{28, "Arial"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 260},
		Decorations: []string{"gold footer bar"},
	},
	{
		Name: "corporate-slate", Category: "corporate",
		BackgroundColor: "gradient:steel", TextColor: "#ffffff", AccentColor: "#00a8ff",
		TitleFont: Font{54, "Arial"}, ContentFont: Font{27, "Arial"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 255},
		Decorations: []string{"diagonal header stripe"},
	},
	{
		Name: "corporate-pinstripe", Category: "corporate",
		BackgroundColor: "#f4f4f4", TextColor: "#2f3640", AccentColor: "#487eb0",
		TitleFont: Font{52, "Calibri"}, ContentFont: Font{27, "Calibri"},
		TitlePosition: Point{640, 125}, ContentPosition: Point{135, 250},
		Decorations: []string{"vertical pinstripes"},
	},
	{
		Name: "corporate-boardroom", Category: "corporate",
		BackgroundColor: "#222f3e", TextColor: "#ecf0f1", AccentColor: "#10ac84",
		TitleFont: Font{54, "Arial"}, ContentFont: Font{28, "Arial"},
		TitlePosition: Point{640, 135}, ContentPosition: Point{145, 265},
		Decorations: []string{"green underline", "subtle grid"},
	},

	// creative
	{
		Name: "creative-splash", Category: "creative",
		BackgroundColor: "gradient:candy", TextColor: "#ffffff", AccentColor: "#feca57",
		TitleFont: Font{60, "Marker Felt"}, ContentFont: Font{29, "Marker Felt"},
		TitlePosition: Point{640, 140}, ContentPosition: Point{150, 280},
		Decorations: []string{"paint splatter", "confetti"},
	},
	{
		Name: "creative-collage", Category: "creative",
		BackgroundColor: "#fff8e7", TextColor: "#4a3f35", AccentColor: "#ff6b6b",
		TitleFont: Font{58, "Futura"}, ContentFont: Font{28, "Futura"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{145, 265},
		Decorations: []string{"torn paper edges"},
	},
	{
		Name: "creative-doodle", Category: "creative",
		BackgroundColor: "#fdf6ec", TextColor: "#3d3d3d", AccentColor: "#6c5ce7",
		TitleFont: Font{58, "Comic Sans MS"}, ContentFont: Font{28, "Comic Sans MS"},
		TitlePosition: Point{640, 135}, ContentPosition: Point{150, 270},
		Decorations: []string{"hand-drawn arrows", "squiggles"},
	},
	{
		Name: "creative-pop", Category: "creative",
		BackgroundColor: "#ffe66d", TextColor: "#222222", AccentColor: "#ff3860",
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 260},
		TitleFont: Font{62, "Impact"}, ContentFont: Font{29, "Impact"},
		Decorations: []string{"halftone dots", "starburst"},
	},

	// tech
	{
		Name: "tech-circuit", Category: "tech",
		BackgroundColor: "#0a192f", TextColor: "#ccd6f6", AccentColor: "#64ffda",
		TitleFont: Font{54, "Menlo"}, ContentFont: Font{26, "Menlo"},
		TitlePosition: Point{640, 125}, ContentPosition: Point{140, 250},
		Decorations: []string{"circuit traces", "node dots"},
	},
	{
		Name: "tech-terminal", Category: "tech",
		BackgroundColor: "#0c0c0c", TextColor: "#33ff66", AccentColor: "#33ff66",
		TitleFont: Font{52, "Courier New"}, ContentFont: Font{26, "Courier New"},
		TitlePosition: Point{640, 120}, ContentPosition: Point{130, 245},
		Decorations: []string{"scanlines", "blinking cursor"},
	},
	{
		Name: "tech-neon", Category: "tech",
		BackgroundColor: "gradient:deep-space", TextColor: "#e0e0ff", AccentColor: "#ff2079",
		TitleFont: Font{58, "Menlo"}, ContentFont: Font{27, "Menlo"},
		TitlePosition: Point{640, 135}, ContentPosition: Point{145, 265},
		Decorations: []string{"neon frame", "glow lines"},
	},
	{
		Name: "tech-blueprint", Category: "tech",
		BackgroundColor: "#123a63", TextColor: "#dbe9ff", AccentColor: "#ffffff",
		TitleFont: Font{52, "Menlo"}, ContentFont: Font{26, "Menlo"},
		TitlePosition: Point{640, 125}, ContentPosition: Point{140, 250},
		Decorations: []string{"grid paper", "measurement ticks"},
	},

	// nature
	{
		Name: "nature-meadow", Category: "nature",
		BackgroundColor: "gradient:forest", TextColor: "#f7fff7", AccentColor: "#ffe66d",
		TitleFont: Font{56, "Georgia"}, ContentFont: Font{28, "Georgia"},
		TitlePosition: Point{640, 135}, ContentPosition: Point{145, 265},
		Decorations: []string{"leaf scatter"},
	},
	{
		Name: "nature-dawn", Category: "nature",
		BackgroundColor: "gradient:dawn", TextColor: "#fff8f0", AccentColor: "#ffd166",
		TitleFont: Font{56, "Georgia"}, ContentFont: Font{28, "Georgia"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 260},
		Decorations: []string{"sun disc", "horizon line"},
	},
	{
		Name: "nature-tide", Category: "nature",
		BackgroundColor: "gradient:ocean", TextColor: "#eaf6ff", AccentColor: "#48dbfb",
		TitleFont: Font{56, "Verdana"}, ContentFont: Font{27, "Verdana"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 255},
		Decorations: []string{"wave bands"},
	},

	// elegant
	{
		Name: "elegant-marble", Category: "elegant",
		BackgroundColor: "gradient:halo", TextColor: "#3d3d3d", AccentColor: "#b08d57",
		TitleFont: Font{58, "Didot"}, ContentFont: Font{28, "Didot"},
		TitlePosition: Point{640, 140}, ContentPosition: Point{150, 275},
		Decorations: []string{"gold corner filigree"},
	},
	{
		Name: "elegant-noir", Category: "elegant",
		BackgroundColor: "#151515", TextColor: "#f0ead6", AccentColor: "#c9a227",
		TitleFont: Font{58, "Didot"}, ContentFont: Font{28, "Didot"},
		TitlePosition: Point{640, 140}, ContentPosition: Point{150, 270},
		Decorations: []string{"thin gold frame"},
	},
	{
		Name: "elegant-pearl", Category: "elegant",
		BackgroundColor: "#f8f5f0", TextColor: "#433a3f", AccentColor: "#8e7dbe",
		TitleFont: Font{56, "Garamond"}, ContentFont: Font{28, "Garamond"},
		TitlePosition: Point{640, 135}, ContentPosition: Point{145, 265},
		Decorations: []string{"soft vignette"},
	},

	// dark
	{
		Name: "dark-midnight", Category: "dark",
		BackgroundColor: "gradient:midnight", TextColor: "#e8f1f2", AccentColor: "#4ecca3",
		TitleFont: Font{56, "Helvetica Neue"}, ContentFont: Font{28, "Helvetica Neue"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 260},
		Decorations: []string{"faint stars"},
	},
	{
		Name: "dark-ember", Category: "dark",
		BackgroundColor: "gradient:ember", TextColor: "#ffe8d6", AccentColor: "#ff7b54",
		TitleFont: Font{56, "Arial"}, ContentFont: Font{28, "Arial"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{140, 260},
		Decorations: []string{"ember specks"},
	},
	{
		Name: "dark-nebula", Category: "dark",
		BackgroundColor: "gradient:nebula", TextColor: "#ece9ff", AccentColor: "#a29bfe",
		TitleFont: Font{58, "Helvetica Neue"}, ContentFont: Font{28, "Helvetica Neue"},
		TitlePosition: Point{640, 135}, ContentPosition: Point{145, 265},
		Decorations: []string{"star field", "nebula haze"},
	},

	// vibrant
	{
		Name: "vibrant-sunset", Category: "vibrant",
		BackgroundColor: "gradient:sunset", TextColor: "#3d1e2f", AccentColor: "#6a0572",
		TitleFont: Font{60, "Futura"}, ContentFont: Font{29, "Futura"},
		TitlePosition: Point{640, 140}, ContentPosition: Point{150, 275},
		Decorations: []string{"sun rays"},
	},
	{
		Name: "vibrant-aurora", Category: "vibrant",
		BackgroundColor: "gradient:aurora", TextColor: "#073b4c", AccentColor: "#ef476f",
		TitleFont: Font{58, "Futura"}, ContentFont: Font{28, "Futura"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{145, 265},
		Decorations: []string{"ribbon waves"},
	},
	{
		Name: "vibrant-festival", Category: "vibrant",
		BackgroundColor: "#ff9f1c", TextColor: "#2b2d42", AccentColor: "#e71d36",
		TitleFont: Font{60, "Impact"}, ContentFont: Font{29, "Impact"},
		TitlePosition: Point{640, 135}, ContentPosition: Point{150, 270},
		Decorations: []string{"bunting", "confetti"},
	},

	// retro
	{
		Name: "retro-wave", Category: "retro",
		BackgroundColor: "gradient:nebula", TextColor: "#fdf0ff", AccentColor: "#ff2079",
		TitleFont: Font{60, "Impact"}, ContentFont: Font{28, "Courier New"},
		TitlePosition: Point{640, 140}, ContentPosition: Point{145, 270},
		Decorations: []string{"horizon grid", "setting sun"},
	},
	{
		Name: "retro-diner", Category: "retro",
		BackgroundColor: "#fff4e0", TextColor: "#6b2737", AccentColor: "#3bceac",
		TitleFont: Font{58, "Rockwell"}, ContentFont: Font{28, "Rockwell"},
		TitlePosition: Point{640, 130}, ContentPosition: Point{145, 260},
		Decorations: []string{"checkerboard strip"},
	},
}
