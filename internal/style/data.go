package style

var categories = []Category{
	{Name: "Minimal & Clean", Styles: []string{"minimalist", "swiss", "monochromatic", "focus-mode", "outlined"}},
	{Name: "Depth & Material", Styles: []string{"glassmorphism", "neomorphism", "claymorphism", "skeuomorphic", "isometric"}},
	{Name: "Bold & Raw", Styles: []string{"brutalist", "neubrutalism", "grunge", "industrial", "maximalist", "collage"}},
	{Name: "Retro & Nostalgic", Styles: []string{"art-deco", "bauhaus", "memphis", "retro-futuristic", "vaporwave", "y2k"}},
	{Name: "Dark & Tech", Styles: []string{"cyberpunk", "terminal", "dark-mode", "data-viz"}},
	{Name: "Soft & Playful", Styles: []string{"kawaii", "soft-pastel", "playful", "corporate-memphis"}},
	{Name: "Natural & Crafted", Styles: []string{"organic", "wabi-sabi", "handcrafted"}},
	{Name: "Editorial & Luxury", Styles: []string{"editorial", "luxury", "academic", "art-deco"}},
	{Name: "Structured & Corporate", Styles: []string{"corporate", "metro", "grid-modular"}},
	{Name: "Motion & Atmosphere", Styles: []string{"gradient", "kinetic", "atmospheric"}},
}

var records = []Record{
	{
		ID:          "minimalist",
		Name:        "Minimalist",
		Description: "Generous whitespace, a restrained monochrome palette and a single accent. Every element earns its place; hierarchy comes from size and spacing rather than decoration.",
		Tags:        []string{"Professional", "Luxury", "Tech", "Portfolio"},
		Examples:    []string{"Apple", "Muji", "Linear"},
		Colors: Colors{
			BgPrimary: "#FFFFFF", BgSecondary: "#F7F7F7", BgTertiary: "#EFEFEF",
			TextPrimary: "#111111", TextSecondary: "#555555", TextTertiary: "#8A8A8A",
			Accent: "#111111", AccentSoft: "#E8E8E8", Secondary: "#6B6B6B",
			Border: "#E5E5E5", BorderStrong: "#CFCFCF",
		},
		Fonts:  Fonts{Display: `"Inter", "Helvetica Neue", sans-serif`, Body: `"Inter", "Helvetica Neue", sans-serif`},
		Radius: "4px",
		Shadow: "none",
	},
	{
		ID:          "swiss",
		Name:        "Swiss / International",
		Description: "Strict modular grids, flush-left sans-serif typography and bold red accents. Objective, information-first layouts inspired by mid-century Swiss posters.",
		Tags:        []string{"Editorial", "Corporate", "Wayfinding"},
		Examples:    []string{"Swiss Federal Railways", "Vitsoe", "Experimental Jetset"},
		Colors: Colors{
			BgPrimary: "#FFFFFF", BgSecondary: "#F2F2F2", BgTertiary: "#E6E6E6",
			TextPrimary: "#000000", TextSecondary: "#333333", TextTertiary: "#777777",
			Accent: "#E30613", AccentSoft: "#FDE3E4", Secondary: "#000000",
			Border: "#000000", BorderStrong: "#000000",
		},
		Fonts:   Fonts{Display: `"Helvetica Neue", "Arial", sans-serif`, Body: `"Helvetica Neue", "Arial", sans-serif`},
		Radius:  "0",
		Shadow:  "none",
		HasGrid: true,
	},
	{
		ID:          "monochromatic",
		Name:        "Monochromatic",
		Description: "A single hue explored across its full tonal range. Cohesive and calm, with contrast coming from lightness alone.",
		Tags:        []string{"Branding", "Portfolio", "Landing pages"},
		Examples:    []string{"Stripe Press", "Cash App"},
		Colors: Colors{
			BgPrimary: "#0D1B2A", BgSecondary: "#1B263B", BgTertiary: "#26354F",
			TextPrimary: "#E0E1DD", TextSecondary: "#A9B4C2", TextTertiary: "#778DA9",
			Accent: "#778DA9", AccentSoft: "#2C3E58", Secondary: "#415A77",
			Border: "#2C3E58", BorderStrong: "#415A77",
		},
		Fonts:  Fonts{Display: `"Manrope", sans-serif`, Body: `"Manrope", sans-serif`},
		Radius: "8px",
		Shadow: "0 8px 24px rgba(0,0,0,0.35)",
	},
	{
		ID:          "corporate",
		Name:        "Corporate",
		Description: "Trustworthy blues, clear hierarchy and conservative components. Optimised for clarity and conversion in business software.",
		Tags:        []string{"SaaS", "Finance", "Enterprise"},
		Examples:    []string{"IBM", "Salesforce", "Atlassian"},
		Colors: Colors{
			BgPrimary: "#FFFFFF", BgSecondary: "#F4F6FA", BgTertiary: "#E9EDF5",
			TextPrimary: "#172B4D", TextSecondary: "#42526E", TextTertiary: "#6B778C",
			Accent: "#0052CC", AccentSoft: "#DEEBFF", Secondary: "#00875A",
			Border: "#DFE1E6", BorderStrong: "#C1C7D0",
		},
		Fonts:  Fonts{Display: `"IBM Plex Sans", sans-serif`, Body: `"IBM Plex Sans", sans-serif`},
		Radius: "6px",
		Shadow: "0 1px 3px rgba(9,30,66,0.15)",
	},
	{
		ID:          "glassmorphism",
		Name:        "Glassmorphism",
		Description: "Frosted translucent panels floating over vivid gradients. Depth comes from blur, light borders and layered transparency.",
		Tags:        []string{"Overlays", "Cards", "Modern UI"},
		Examples:    []string{"macOS Big Sur", "Windows 11 Fluent"},
		Colors: Colors{
			BgPrimary: "#1E1B4B", BgSecondary: "rgba(255,255,255,0.12)", BgTertiary: "rgba(255,255,255,0.2)",
			TextPrimary: "#FFFFFF", TextSecondary: "rgba(255,255,255,0.75)", TextTertiary: "rgba(255,255,255,0.5)",
			Accent: "#A78BFA", AccentSoft: "rgba(167,139,250,0.25)", Secondary: "#F472B6",
			Border: "rgba(255,255,255,0.25)", BorderStrong: "rgba(255,255,255,0.4)",
		},
		Fonts:    Fonts{Display: `"SF Pro Display", "Inter", sans-serif`, Body: `"SF Pro Text", "Inter", sans-serif`},
		Radius:   "20px",
		Shadow:   "0 8px 32px rgba(31,38,135,0.37)",
		Gradient: "linear-gradient(135deg, #667EEA 0%, #764BA2 50%, #F472B6 100%)",
	},
	{
		ID:          "neomorphism",
		Name:        "Neomorphism",
		Description: "Soft extruded surfaces that share the background color, shaped entirely by paired light and dark shadows.",
		Tags:        []string{"Dashboards", "Controls", "Smart home"},
		Examples:    []string{"Dribbble concepts", "Smart home apps"},
		Colors: Colors{
			BgPrimary: "#E0E5EC", BgSecondary: "#E0E5EC", BgTertiary: "#D1D9E6",
			TextPrimary: "#3D4852", TextSecondary: "#6B7280", TextTertiary: "#9BA3AF",
			Accent: "#6C63FF", AccentSoft: "#D6D4FF", Secondary: "#38B2AC",
			Border: "transparent", BorderStrong: "#B8BEC7",
		},
		Fonts:  Fonts{Display: `"Nunito", sans-serif`, Body: `"Nunito", sans-serif`},
		Radius: "16px",
		Shadow: "9px 9px 16px rgba(163,177,198,0.6), -9px -9px 16px rgba(255,255,255,0.5)",
	},
	{
		ID:          "claymorphism",
		Name:        "Claymorphism",
		Description: "Puffy, inflated 3D shapes with pastel fills, inner highlights and big rounded corners. Friendly and tactile.",
		Tags:        []string{"Kids", "Onboarding", "Illustration"},
		Examples:    []string{"Duolingo", "Clay illustrations"},
		Colors: Colors{
			BgPrimary: "#F3EEFF", BgSecondary: "#FFFFFF", BgTertiary: "#E9E0FF",
			TextPrimary: "#2E2A47", TextSecondary: "#6E6893", TextTertiary: "#A39FC0",
			Accent: "#FF7AA2", AccentSoft: "#FFE0EA", Secondary: "#7AD3FF",
			Border: "transparent", BorderStrong: "#D9CCFF",
		},
		Fonts:  Fonts{Display: `"Baloo 2", "Nunito", sans-serif`, Body: `"Nunito", sans-serif`},
		Radius: "32px",
		Shadow: "8px 8px 16px rgba(46,42,71,0.15), inset -6px -6px 12px rgba(46,42,71,0.08), inset 6px 6px 12px rgba(255,255,255,0.9)",
	},
	{
		ID:          "skeuomorphic",
		Name:        "Skeuomorphic",
		Description: "Interfaces that imitate physical materials: stitched leather, brushed metal, paper and glossy buttons.",
		Tags:        []string{"Audio", "Games", "Nostalgia"},
		Examples:    []string{"iOS 6", "Teenage Engineering apps"},
		Colors: Colors{
			BgPrimary: "#D9D2C5", BgSecondary: "#EFE9DD", BgTertiary: "#C7BEAE",
			TextPrimary: "#2A241C", TextSecondary: "#574C3D", TextTertiary: "#85796A",
			Accent: "#2F6FB3", AccentSoft: "#CFE0F2", Secondary: "#8C5A2B",
			Border: "#A89C87", BorderStrong: "#7D705C",
		},
		Fonts:    Fonts{Display: `"Georgia", serif`, Body: `"Lucida Grande", "Helvetica", sans-serif`},
		Radius:   "10px",
		Shadow:   "inset 0 1px 0 rgba(255,255,255,0.6), 0 2px 4px rgba(0,0,0,0.35)",
		Gradient: "linear-gradient(180deg, #EFE9DD 0%, #D9D2C5 100%)",
		HasNoise: true,
	},
	{
		ID:          "brutalist",
		Name:        "Brutalist",
		Description: "Raw, unpolished layouts with default fonts, hard edges and visible structure. Deliberately anti-design and confrontational.",
		Tags:        []string{"Art", "Portfolios", "Anti-establishment"},
		Examples:    []string{"Bloomberg Businessweek", "Craigslist", "Balenciaga"},
		Colors: Colors{
			BgPrimary: "#FFFFFF", BgSecondary: "#F0F0F0", BgTertiary: "#E0E0E0",
			TextPrimary: "#000000", TextSecondary: "#222222", TextTertiary: "#555555",
			Accent: "#0000FF", AccentSoft: "#E0E0FF", Secondary: "#FF0000",
			Border: "#000000", BorderStrong: "#000000",
		},
		Fonts:  Fonts{Display: `"Times New Roman", serif`, Body: `"Courier New", monospace`},
		Radius: "0",
		Shadow: "none",
	},
	{
		ID:          "neubrutalism",
		Name:        "Neubrutalism",
		Description: "Brutalism made friendly: thick black outlines, flat saturated fills and hard offset shadows.",
		Tags:        []string{"Startups", "Creative tools", "Marketing"},
		Examples:    []string{"Gumroad", "Figma Config"},
		Colors: Colors{
			BgPrimary: "#FFFDF5", BgSecondary: "#FFE66D", BgTertiary: "#A0E7E5",
			TextPrimary: "#000000", TextSecondary: "#1F1F1F", TextTertiary: "#4A4A4A",
			Accent: "#FF6B6B", AccentSoft: "#FFD6D6", Secondary: "#4ECDC4",
			Border: "#000000", BorderStrong: "#000000",
		},
		Fonts:  Fonts{Display: `"Space Grotesk", sans-serif`, Body: `"Space Grotesk", sans-serif`},
		Radius: "8px",
		Shadow: "4px 4px 0 #000000",
	},
	{
		ID:          "grunge",
		Name:        "Grunge",
		Description: "Distressed textures, torn edges, stains and scratchy type. Loud, messy and emotional.",
		Tags:        []string{"Music", "Fashion", "Events"},
		Examples:    []string{"Ray Gun magazine", "Band sites"},
		Colors: Colors{
			BgPrimary: "#1A1714", BgSecondary: "#2A2520", BgTertiary: "#3A332B",
			TextPrimary: "#E8DCC8", TextSecondary: "#B8A98F", TextTertiary: "#7A6E5C",
			Accent: "#C1440E", AccentSoft: "#4A2A1A", Secondary: "#7D8C3C",
			Border: "#4A4036", BorderStrong: "#6B5D4D",
		},
		Fonts:    Fonts{Display: `"Special Elite", cursive`, Body: `"Courier Prime", monospace`},
		Radius:   "0",
		Shadow:   "none",
		HasNoise: true,
		HasGrain: true,
	},
	{
		ID:          "industrial",
		Name:        "Industrial",
		Description: "Steel greys, hazard yellow, stencil type and bolted panels. Utilitarian and heavy-duty.",
		Tags:        []string{"Manufacturing", "Logistics", "Tools"},
		Examples:    []string{"Caterpillar", "DeWalt"},
		Colors: Colors{
			BgPrimary: "#2B2D2F", BgSecondary: "#3A3D40", BgTertiary: "#4A4E52",
			TextPrimary: "#F2F2F2", TextSecondary: "#C4C7CA", TextTertiary: "#8E9296",
			Accent: "#FFC300", AccentSoft: "#4D4220", Secondary: "#E85D04",
			Border: "#55595D", BorderStrong: "#70757A",
		},
		Fonts:    Fonts{Display: `"Stardos Stencil", "Oswald", sans-serif`, Body: `"Roboto Mono", monospace`},
		Radius:   "2px",
		Shadow:   "inset 0 0 0 1px rgba(255,255,255,0.05), 0 2px 0 #1A1B1C",
		HasNoise: true,
	},
	{
		ID:          "art-deco",
		Name:        "Art Deco",
		Description: "Geometric symmetry, gold on black, fan motifs and elegant condensed capitals from the 1920s.",
		Tags:        []string{"Luxury", "Hotels", "Events"},
		Examples:    []string{"The Great Gatsby", "Chrysler Building"},
		Colors: Colors{
			BgPrimary: "#0B0B0B", BgSecondary: "#161513", BgTertiary: "#22201C",
			TextPrimary: "#F5E6C4", TextSecondary: "#CDB78A", TextTertiary: "#8F7D58",
			Accent: "#D4AF37", AccentSoft: "#3A3220", Secondary: "#1F6F5C",
			Border: "#D4AF37", BorderStrong: "#F0CF65",
		},
		Fonts:  Fonts{Display: `"Poiret One", "Josefin Sans", sans-serif`, Body: `"Josefin Sans", sans-serif`},
		Radius: "0",
		Shadow: "none",
	},
	{
		ID:          "bauhaus",
		Name:        "Bauhaus",
		Description: "Primary colors, circles, squares and triangles composed on a strict grid. Form follows function.",
		Tags:        []string{"Education", "Museums", "Design studios"},
		Examples:    []string{"Bauhaus Dessau", "Herbert Bayer posters"},
		Colors: Colors{
			BgPrimary: "#F2EDE4", BgSecondary: "#FFFFFF", BgTertiary: "#E5DED2",
			TextPrimary: "#111111", TextSecondary: "#3A3A3A", TextTertiary: "#6A6A6A",
			Accent: "#D02C2F", AccentSoft: "#F6D5D5", Secondary: "#1F4E9C",
			Border: "#111111", BorderStrong: "#111111",
		},
		Fonts:  Fonts{Display: `"Futura", "Josefin Sans", sans-serif`, Body: `"Futura", "Helvetica", sans-serif`},
		Radius: "0",
		Shadow: "none",
	},
	{
		ID:          "memphis",
		Name:        "Memphis",
		Description: "Clashing patterns, squiggles, confetti shapes and candy colors from 1980s Milan.",
		Tags:        []string{"Youth brands", "Events", "Playful marketing"},
		Examples:    []string{"Memphis Group", "Saved by the Bell"},
		Colors: Colors{
			BgPrimary: "#FFF8E7", BgSecondary: "#FFFFFF", BgTertiary: "#FFE8F0",
			TextPrimary: "#1B1B3A", TextSecondary: "#3D3D66", TextTertiary: "#6E6E99",
			Accent: "#FF4F9A", AccentSoft: "#FFD3E6", Secondary: "#00BFB2",
			Border: "#1B1B3A", BorderStrong: "#1B1B3A",
		},
		Fonts:  Fonts{Display: `"Righteous", cursive`, Body: `"Poppins", sans-serif`},
		Radius: "0",
		Shadow: "6px 6px 0 #FFD23F",
	},
	{
		ID:          "retro-futuristic",
		Name:        "Retro-Futuristic",
		Description: "The future as imagined in the 1970s: chrome type, sunset horizons, wireframe mountains.",
		Tags:        []string{"Games", "Music", "Events"},
		Examples:    []string{"Tron", "Outrun"},
		Colors: Colors{
			BgPrimary: "#120B2E", BgSecondary: "#1E1347", BgTertiary: "#2B1B61",
			TextPrimary: "#FFE8D6", TextSecondary: "#F5B8A0", TextTertiary: "#B07A8F",
			Accent: "#FF6B35", AccentSoft: "#4A1F3D", Secondary: "#00D4FF",
			Border: "#3D2A80", BorderStrong: "#FF6B35",
		},
		Fonts:    Fonts{Display: `"Monoton", "Orbitron", sans-serif`, Body: `"Orbitron", sans-serif`},
		Radius:   "4px",
		Shadow:   "0 0 20px rgba(255,107,53,0.5)",
		Gradient: "linear-gradient(180deg, #120B2E 0%, #3B0F50 60%, #FF6B35 100%)",
		HasGrid:  true,
	},
	{
		ID:          "vaporwave",
		Name:        "Vaporwave",
		Description: "Pastel pinks and cyans, Greek busts, palm trees and early-internet nostalgia bathed in a sunset grid.",
		Tags:        []string{"Music", "Art", "Streetwear"},
		Examples:    []string{"Macintosh Plus", "Floral Shoppe"},
		Colors: Colors{
			BgPrimary: "#2D1B4E", BgSecondary: "#3E2766", BgTertiary: "#51347F",
			TextPrimary: "#FFFFFF", TextSecondary: "#B39DDB", TextTertiary: "#9575CD",
			Accent: "#FF71CE", AccentSoft: "#5E2F6E", Secondary: "#01CDFE",
			Border: "#7A5BA8", BorderStrong: "#FF71CE",
		},
		Fonts:        Fonts{Display: `"VT323", monospace`, Body: `"Space Mono", monospace`},
		Radius:       "0",
		Shadow:       "0 0 12px rgba(255,113,206,0.6)",
		Gradient:     "linear-gradient(180deg, #2D1B4E 0%, #FF71CE 100%)",
		HasGrid:      true,
		HasScanlines: true,
	},
	{
		ID:          "y2k",
		Name:        "Y2K",
		Description: "Chrome, bubbles, iridescent gradients and sparkles from the turn of the millennium.",
		Tags:        []string{"Fashion", "Beauty", "Gen Z"},
		Examples:    []string{"Early iMac", "Bratz", "Windows Media Player"},
		Colors: Colors{
			BgPrimary: "#E8F4FF", BgSecondary: "#FFFFFF", BgTertiary: "#D6E9FF",
			TextPrimary: "#1A1A40", TextSecondary: "#4A4A80", TextTertiary: "#8080B0",
			Accent: "#B026FF", AccentSoft: "#EED6FF", Secondary: "#00E5FF",
			Border: "#B8D4F0", BorderStrong: "#8AB4E8",
		},
		Fonts:    Fonts{Display: `"Rubik Mono One", sans-serif`, Body: `"Trebuchet MS", sans-serif`},
		Radius:   "24px",
		Shadow:   "0 4px 20px rgba(176,38,255,0.25)",
		Gradient: "linear-gradient(135deg, #E8F4FF 0%, #F5D6FF 50%, #D6FFF9 100%)",
	},
	{
		ID:          "cyberpunk",
		Name:        "Cyberpunk",
		Description: "Dark cityscapes lit by neon magenta and cyan, glitch artefacts, angular HUD frames and monospace readouts.",
		Tags:        []string{"Gaming", "Tech", "Web3"},
		Examples:    []string{"Cyberpunk 2077", "Blade Runner 2049"},
		Colors: Colors{
			BgPrimary: "#0A0E17", BgSecondary: "#111827", BgTertiary: "#1A2236",
			TextPrimary: "#E6F1FF", TextSecondary: "#7FDBFF", TextTertiary: "#4A6A8A",
			Accent: "#FF2A6D", AccentSoft: "#3A1024", Secondary: "#05D9E8",
			Border: "#1F3A5F", BorderStrong: "#05D9E8",
		},
		Fonts:        Fonts{Display: `"Orbitron", sans-serif`, Body: `"Share Tech Mono", monospace`, Japanese: `"DotGothic16", monospace`},
		Radius:       "0",
		Shadow:       "0 0 10px rgba(255,42,109,0.6)",
		HasScanlines: true,
		HasGrid:      true,
	},
	{
		ID:          "terminal",
		Name:        "Terminal",
		Description: "Phosphor green on black, blinking cursors and monospace everything. Command-line aesthetics for developer tools.",
		Tags:        []string{"Developer tools", "Hacker", "CLI"},
		Examples:    []string{"Warp", "Hyper", "Fallout Pip-Boy"},
		Colors: Colors{
			BgPrimary: "#0A0A0A", BgSecondary: "#111111", BgTertiary: "#1A1A1A",
			TextPrimary: "#00FF41", TextSecondary: "#00B82E", TextTertiary: "#007A1F",
			Accent: "#00FF41", AccentSoft: "#0D2B14", Secondary: "#FFB000",
			Border: "transparent", BorderStrong: "#00FF41",
		},
		Fonts:        Fonts{Display: `"IBM Plex Mono", monospace`, Body: `"IBM Plex Mono", monospace`},
		Radius:       "0",
		Shadow:       "0 0 8px rgba(0,255,65,0.4)",
		HasScanlines: true,
	},
	{
		ID:          "dark-mode",
		Name:        "Dark Mode",
		Description: "Low-glare dark surfaces with elevated greys, desaturated accents and careful contrast for long sessions.",
		Tags:        []string{"Productivity", "Developer tools", "Media"},
		Examples:    []string{"GitHub Dark", "Spotify", "Discord"},
		Colors: Colors{
			BgPrimary: "#121212", BgSecondary: "#1E1E1E", BgTertiary: "#2A2A2A",
			TextPrimary: "#EDEDED", TextSecondary: "#A0A0A0", TextTertiary: "#6E6E6E",
			Accent: "#BB86FC", AccentSoft: "#2E2440", Secondary: "#03DAC6",
			Border: "#2E2E2E", BorderStrong: "#3D3D3D",
		},
		Fonts:  Fonts{Display: `"Inter", sans-serif`, Body: `"Inter", sans-serif`},
		Radius: "8px",
		Shadow: "0 2px 8px rgba(0,0,0,0.5)",
	},
	{
		ID:          "kawaii",
		Name:        "Kawaii",
		Description: "Adorable, candy-colored interfaces with chibi mascots, hearts, stars and bouncy rounded shapes.",
		Tags:        []string{"Anime", "Stationery", "Playful apps"},
		Examples:    []string{"Sanrio", "LINE Friends"},
		Colors: Colors{
			BgPrimary: "#FFF0F5", BgSecondary: "#FFFFFF", BgTertiary: "#FFE4EE",
			TextPrimary: "#5A3D55", TextSecondary: "#8E6C88", TextTertiary: "#C2A3BC",
			Accent: "#FF8FB8", AccentSoft: "#FFD6E5", Secondary: "#9AD8F5",
			Border: "#FFD1E1", BorderStrong: "#FFB3CD",
		},
		Fonts:  Fonts{Display: `"Mochiy Pop One", "Baloo 2", sans-serif`, Body: `"M PLUS Rounded 1c", sans-serif`, Japanese: `"M PLUS Rounded 1c", sans-serif`},
		Radius: "24px",
		Shadow: "0 4px 0 #FFB3CD",
	},
	{
		ID:          "soft-pastel",
		Name:        "Soft Pastel",
		Description: "Powdery pastels, gentle gradients and airy spacing. Soothing and approachable.",
		Tags:        []string{"Wellness", "Beauty", "Baby products"},
		Examples:    []string{"Glossier", "Flo"},
		Colors: Colors{
			BgPrimary: "#FDF6F0", BgSecondary: "#FFFFFF", BgTertiary: "#F5EAF7",
			TextPrimary: "#4A4453", TextSecondary: "#9A93A5", TextTertiary: "#B9B2C3",
			Accent: "#F4A5B5", AccentSoft: "#FCE4EA", Secondary: "#A8D8C9",
			Border: "#EFE3EA", BorderStrong: "#E0CFD9",
		},
		Fonts:  Fonts{Display: `"Quicksand", sans-serif`, Body: `"Nunito", sans-serif`},
		Radius: "16px",
		Shadow: "0 4px 16px rgba(244,165,181,0.2)",
	},
	{
		ID:          "playful",
		Name:        "Playful",
		Description: "Bright primaries, wobbly shapes, stickers and springy motion. Fun without being childish.",
		Tags:        []string{"Consumer apps", "Education", "Games"},
		Examples:    []string{"Mailchimp", "Headspace for Kids"},
		Colors: Colors{
			BgPrimary: "#FFFBEA", BgSecondary: "#FFFFFF", BgTertiary: "#FFF1C2",
			TextPrimary: "#1E1E2F", TextSecondary: "#4B4B6B", TextTertiary: "#8585A3",
			Accent: "#FF5A36", AccentSoft: "#FFDAD1", Secondary: "#2D9CDB",
			Border: "#1E1E2F", BorderStrong: "#1E1E2F",
		},
		Fonts:  Fonts{Display: `"Fredoka", sans-serif`, Body: `"Nunito", sans-serif`},
		Radius: "18px",
		Shadow: "3px 3px 0 #1E1E2F",
	},
	{
		ID:          "organic",
		Name:        "Organic",
		Description: "Natural greens and clay tones, blob shapes, leaf motifs and hand-drawn lines.",
		Tags:        []string{"Sustainability", "Food", "Wellness"},
		Examples:    []string{"Patagonia", "Oatly"},
		Colors: Colors{
			BgPrimary: "#F5F1E8", BgSecondary: "#FFFFFF", BgTertiary: "#E8E1D1",
			TextPrimary: "#2F3A2F", TextSecondary: "#5B6B57", TextTertiary: "#8D9A88",
			Accent: "#5E8C61", AccentSoft: "#DCEADC", Secondary: "#C27C4E",
			Border: "#DDD5C3", BorderStrong: "#C2B8A3",
		},
		Fonts:    Fonts{Display: `"Fraunces", serif`, Body: `"Karla", sans-serif`},
		Radius:   "24px",
		Shadow:   "0 6px 20px rgba(47,58,47,0.08)",
		HasGrain: true,
	},
	{
		ID:          "wabi-sabi",
		Name:        "Wabi-Sabi",
		Description: "Beauty in imperfection: weathered textures, asymmetric balance and quiet natural tones.",
		Tags:        []string{"Ceramics", "Interiors", "Tea"},
		Examples:    []string{"Kinfolk", "Hasami Porcelain"},
		Colors: Colors{
			BgPrimary: "#EDE8DF", BgSecondary: "#F6F3EE", BgTertiary: "#DCD4C6",
			TextPrimary: "#3B3630", TextSecondary: "#6B6358", TextTertiary: "#9A9185",
			Accent: "#8C6A4F", AccentSoft: "#E3D6C8", Secondary: "#6F7D6A",
			Border: "#D2C8B8", BorderStrong: "#B5A996",
		},
		Fonts:    Fonts{Display: `"Cormorant Garamond", serif`, Body: `"Noto Serif JP", serif`, Japanese: `"Noto Serif JP", serif`},
		Radius:   "3px",
		Shadow:   "none",
		HasGrain: true,
		HasNoise: true,
	},
	{
		ID:          "handcrafted",
		Name:        "Handcrafted",
		Description: "Sketchy borders, hand-lettered headings, paper textures and doodles that feel made by a person.",
		Tags:        []string{"Bakeries", "Makers", "Personal blogs"},
		Examples:    []string{"Etsy shops", "Notion illustrations"},
		Colors: Colors{
			BgPrimary: "#FBF7EE", BgSecondary: "#FFFFFF", BgTertiary: "#F1E9D8",
			TextPrimary: "#2B2A27", TextSecondary: "#5A574F", TextTertiary: "#8E897C",
			Accent: "#D9643A", AccentSoft: "#F7DCCF", Secondary: "#3F7CAC",
			Border: "#2B2A27", BorderStrong: "#2B2A27",
		},
		Fonts:    Fonts{Display: `"Caveat", cursive`, Body: `"Patrick Hand", cursive`},
		Radius:   "12px 4px 14px 6px",
		Shadow:   "2px 3px 0 rgba(43,42,39,0.8)",
		HasGrain: true,
	},
	{
		ID:          "editorial",
		Name:        "Editorial",
		Description: "Magazine grids, dramatic serif headlines, drop caps and fine rules. Content leads, chrome recedes.",
		Tags:        []string{"Publishing", "Blogs", "Journalism"},
		Examples:    []string{"The New York Times Magazine", "Kinfolk", "Medium"},
		Colors: Colors{
			BgPrimary: "#FAFAF7", BgSecondary: "#FFFFFF", BgTertiary: "#F0EFEA",
			TextPrimary: "#141414", TextSecondary: "#474747", TextTertiary: "#7A7A7A",
			Accent: "#B3261E", AccentSoft: "#F4DDDB", Secondary: "#141414",
			Border: "#E2E0D8", BorderStrong: "#141414",
		},
		Fonts:  Fonts{Display: `"Playfair Display", serif`, Body: `"Source Serif Pro", serif`},
		Radius: "0",
		Shadow: "none",
	},
	{
		ID:          "luxury",
		Name:        "Luxury",
		Description: "Deep blacks, champagne gold, thin serif type and wide letter-spacing. Quiet, expensive restraint.",
		Tags:        []string{"Fashion", "Jewelry", "Real estate"},
		Examples:    []string{"Chanel", "Rolex", "Aman Resorts"},
		Colors: Colors{
			BgPrimary: "#0E0E0E", BgSecondary: "#171717", BgTertiary: "#222222",
			TextPrimary: "#F4EFE6", TextSecondary: "#BFB6A8", TextTertiary: "#857D71",
			Accent: "#C9A96E", AccentSoft: "#2D271C", Secondary: "#F4EFE6",
			Border: "#2E2A24", BorderStrong: "#C9A96E",
		},
		Fonts:  Fonts{Display: `"Cormorant", serif`, Body: `"Montserrat", sans-serif`},
		Radius: "0",
		Shadow: "none",
	},
	{
		ID:          "academic",
		Name:        "Academic",
		Description: "Scholarly serif typography, footnotes, marginalia and muted institutional colors.",
		Tags:        []string{"Universities", "Research", "Documentation"},
		Examples:    []string{"Distill.pub", "arXiv", "Oxford University Press"},
		Colors: Colors{
			BgPrimary: "#FFFEF9", BgSecondary: "#F7F5EC", BgTertiary: "#EDEADC",
			TextPrimary: "#1F1F1F", TextSecondary: "#4D4D4D", TextTertiary: "#7F7F7F",
			Accent: "#7A1F2B", AccentSoft: "#F1DDE0", Secondary: "#1F3A5F",
			Border: "#DAD6C6", BorderStrong: "#9E9988",
		},
		Fonts:  Fonts{Display: `"EB Garamond", serif`, Body: `"Crimson Text", serif`},
		Radius: "2px",
		Shadow: "none",
	},	{
		ID:          "focus-mode",
		Name:        "Focus Mode",
		Description: "Distraction-free reading surfaces with one centred column, muted chrome and a soft glow around the active element.",
		Tags:        []string{"Writing", "Productivity", "Reading"},
		Examples:    []string{"iA Writer", "Bear", "Readwise Reader"},
		Colors: Colors{
			BgPrimary: "#FAFAF7", BgSecondary: "#F2F2EE", BgTertiary: "#E8E8E2",
			TextPrimary: "#1C1C1A", TextSecondary: "#52524C", TextTertiary: "#8C8C84",
			Accent: "#2F6FEB", AccentSoft: "#DCE7FC", Secondary: "#6E6E66",
			Border: "#E2E2DC", BorderStrong: "#C8C8C0",
		},
		Fonts:  Fonts{Display: `"iA Writer Quattro", "IBM Plex Sans", sans-serif`, Body: `"iA Writer Duo", "IBM Plex Mono", monospace`},
		Radius: "6px",
		Shadow: "0 0 0 4px rgba(47,111,235,0.12)",
	},
	{
		ID:          "metro",
		Name:        "Metro",
		Description: "Flat coloured tiles, bold typography and content over chrome. Live tiles pack information into a strict rectangular grid.",
		Tags:        []string{"Dashboards", "Launchers", "Signage"},
		Examples:    []string{"Windows Phone", "Zune", "Xbox 360 Dashboard"},
		Colors: Colors{
			BgPrimary: "#FFFFFF", BgSecondary: "#F0F0F0", BgTertiary: "#E1E1E1",
			TextPrimary: "#000000", TextSecondary: "#3A3A3A", TextTertiary: "#767676",
			Accent: "#0063B1", AccentSoft: "#CCE0F0", Secondary: "#E3008C",
			Border: "#D0D0D0", BorderStrong: "#000000",
		},
		Fonts:  Fonts{Display: `"Segoe UI Light", "Selawik", sans-serif`, Body: `"Segoe UI", "Selawik", sans-serif`},
		Radius: "0",
		Shadow: "none",
	},
	{
		ID:          "outlined",
		Name:        "Outlined",
		Description: "Line-only components on a plain ground. Shapes are drawn with uniform strokes and never filled, so structure reads like a blueprint.",
		Tags:        []string{"Portfolios", "Developer Tools", "Wireframes"},
		Examples:    []string{"Vercel", "Teenage Engineering", "Figma Wireframe Kits"},
		Colors: Colors{
			BgPrimary: "#FFFFFF", BgSecondary: "#FFFFFF", BgTertiary: "#F6F6F6",
			TextPrimary: "#0A0A0A", TextSecondary: "#404040", TextTertiary: "#737373",
			Accent: "#0A0A0A", AccentSoft: "#F0F0F0", Secondary: "#525252",
			Border: "#0A0A0A", BorderStrong: "#0A0A0A",
		},
		Fonts:  Fonts{Display: `"Space Grotesk", sans-serif`, Body: `"Inter", sans-serif`},
		Radius: "8px",
		Shadow: "none",
	},
	{
		ID:          "grid-modular",
		Name:        "Grid Modular",
		Description: "Visible column and row rules divide the page into equal modules. Content snaps to cells and whitespace is measured in whole units.",
		Tags:        []string{"Magazines", "Galleries", "Architecture"},
		Examples:    []string{"Pentagram", "Are.na", "Dieter Rams archive"},
		Colors: Colors{
			BgPrimary: "#F5F5F0", BgSecondary: "#EBEBE4", BgTertiary: "#DEDED6",
			TextPrimary: "#141414", TextSecondary: "#474747", TextTertiary: "#7A7A7A",
			Accent: "#FF4F00", AccentSoft: "#FFE1D1", Secondary: "#141414",
			Border: "#141414", BorderStrong: "#141414",
		},
		Fonts:   Fonts{Display: `"Neue Haas Grotesk", "Helvetica Neue", sans-serif`, Body: `"IBM Plex Sans", sans-serif`},
		Radius:  "0",
		Shadow:  "none",
		HasGrid: true,
	},
	{
		ID:          "corporate-memphis",
		Name:        "Corporate Memphis",
		Description: "Flat illustrations of long-limbed figures, friendly blobs and confetti dots in a bright but safe palette.",
		Tags:        []string{"SaaS", "Onboarding", "Marketing"},
		Examples:    []string{"Slack", "Airbnb Belo era", "Facebook Alegria"},
		Colors: Colors{
			BgPrimary: "#FFFFFF", BgSecondary: "#FFF4EC", BgTertiary: "#EAF2FF",
			TextPrimary: "#1B1B3A", TextSecondary: "#4B4B6B", TextTertiary: "#8080A0",
			Accent: "#5B4CF0", AccentSoft: "#E7E4FD", Secondary: "#FF8A5C",
			Border: "#E6E6F0", BorderStrong: "#C4C4D8",
		},
		Fonts:  Fonts{Display: `"Poppins", sans-serif`, Body: `"Nunito Sans", sans-serif`},
		Radius: "16px",
		Shadow: "0 6px 20px rgba(91,76,240,0.15)",
	},
	{
		ID:          "data-viz",
		Name:        "Data Visualization",
		Description: "Dense dashboards where charts carry the page. A categorical palette, tabular numerals and quiet chrome keep the data legible.",
		Tags:        []string{"Analytics", "Finance", "Monitoring"},
		Examples:    []string{"Observable", "Grafana", "Bloomberg Terminal"},
		Colors: Colors{
			BgPrimary: "#0F172A", BgSecondary: "#1E293B", BgTertiary: "#334155",
			TextPrimary: "#F1F5F9", TextSecondary: "#CBD5E1", TextTertiary: "#94A3B8",
			Accent: "#38BDF8", AccentSoft: "rgba(56,189,248,0.18)", Secondary: "#F59E0B",
			Border: "#334155", BorderStrong: "#475569",
		},
		Fonts:   Fonts{Display: `"Inter Tight", sans-serif`, Body: `"JetBrains Mono", monospace`},
		Radius:  "6px",
		Shadow:  "none",
		HasGrid: true,
	},
	{
		ID:          "isometric",
		Name:        "Isometric",
		Description: "Thirty-degree projections, stacked cubes and crisp shaded faces give flat screens an architectural depth.",
		Tags:        []string{"Illustration", "Infrastructure", "Games"},
		Examples:    []string{"Monument Valley", "Stripe Sessions", "Cloudcraft"},
		Colors: Colors{
			BgPrimary: "#EEF2FF", BgSecondary: "#E0E7FF", BgTertiary: "#C7D2FE",
			TextPrimary: "#1E1B4B", TextSecondary: "#3730A3", TextTertiary: "#6366F1",
			Accent: "#4F46E5", AccentSoft: "#C7D2FE", Secondary: "#14B8A6",
			Border: "#A5B4FC", BorderStrong: "#6366F1",
		},
		Fonts:  Fonts{Display: `"Sora", sans-serif`, Body: `"Inter", sans-serif`},
		Radius: "4px",
		Shadow: "8px 8px 0 rgba(79,70,229,0.25)",
	},
	{
		ID:          "gradient",
		Name:        "Gradient",
		Description: "Vivid mesh gradients fill large surfaces while type stays crisp and white. Colour transitions do the work of illustration.",
		Tags:        []string{"Launch Pages", "Fintech", "Music"},
		Examples:    []string{"Stripe", "Instagram", "Spotify Wrapped"},
		Colors: Colors{
			BgPrimary: "#4C1D95", BgSecondary: "rgba(255,255,255,0.1)", BgTertiary: "rgba(255,255,255,0.18)",
			TextPrimary: "#FFFFFF", TextSecondary: "#EDE9FE", TextTertiary: "#C4B5FD",
			Accent: "#FDE047", AccentSoft: "rgba(253,224,71,0.2)", Secondary: "#F472B6",
			Border: "rgba(255,255,255,0.2)", BorderStrong: "rgba(255,255,255,0.35)",
		},
		Fonts:    Fonts{Display: `"Clash Display", "Inter", sans-serif`, Body: `"Inter", sans-serif`},
		Radius:   "16px",
		Shadow:   "0 10px 40px rgba(76,29,149,0.35)",
		Gradient: "linear-gradient(135deg, #4C1D95 0%, #DB2777 55%, #F59E0B 100%)",
	},
	{
		ID:          "maximalist",
		Name:        "Maximalist",
		Description: "More is more: clashing patterns, saturated colour, layered shapes and oversized type compete for attention on purpose.",
		Tags:        []string{"Fashion", "Music", "Events"},
		Examples:    []string{"Gucci", "Spotify Wrapped", "Pitchfork"},
		Colors: Colors{
			BgPrimary: "#FFF3B0", BgSecondary: "#FFD6E8", BgTertiary: "#C4F1F9",
			TextPrimary: "#1A0033", TextSecondary: "#4A0E4E", TextTertiary: "#7A2E6E",
			Accent: "#FF006E", AccentSoft: "#FFC2DC", Secondary: "#3A86FF",
			Border: "#1A0033", BorderStrong: "#1A0033",
		},
		Fonts:    Fonts{Display: `"Bungee", "Rubik Mono One", sans-serif`, Body: `"Work Sans", sans-serif`},
		Radius:   "24px",
		Shadow:   "6px 6px 0 #3A86FF",
		HasNoise: true,
	},
	{
		ID:          "collage",
		Name:        "Collage",
		Description: "Cut paper, torn edges, tape and stamps. Photos and type are layered by hand, so nothing sits quite straight.",
		Tags:        []string{"Zines", "Campaigns", "Personal Sites"},
		Examples:    []string{"Mailchimp Annual Report", "Are.na Editorial", "Dazed"},
		Colors: Colors{
			BgPrimary: "#F3EDE2", BgSecondary: "#E9E0D0", BgTertiary: "#DCCFB8",
			TextPrimary: "#1E1A16", TextSecondary: "#4A4238", TextTertiary: "#7D7264",
			Accent: "#D7263D", AccentSoft: "#F6D3D8", Secondary: "#1B998B",
			Border: "#BFB39E", BorderStrong: "#1E1A16",
		},
		Fonts:    Fonts{Display: `"Archivo Black", sans-serif`, Body: `"Courier Prime", monospace`},
		Radius:   "0",
		Shadow:   "2px 3px 0 rgba(30,26,22,0.25)",
		HasGrain: true,
	},
	{
		ID:          "kinetic",
		Name:        "Kinetic Typography",
		Description: "Type that moves: scaling headlines, scrolling marquees and rotating rings turn copy into motion graphics.",
		Tags:        []string{"Agencies", "Events", "Product Launches"},
		Examples:    []string{"Apple Event pages", "Locomotive", "Active Theory"},
		Colors: Colors{
			BgPrimary: "#0B0B0B", BgSecondary: "#161616", BgTertiary: "#222222",
			TextPrimary: "#FAFAFA", TextSecondary: "#BDBDBD", TextTertiary: "#8A8A8A",
			Accent: "#C6FF00", AccentSoft: "rgba(198,255,0,0.15)", Secondary: "#FF3D00",
			Border: "#2E2E2E", BorderStrong: "#FAFAFA",
		},
		Fonts:  Fonts{Display: `"Monument Extended", "Syne", sans-serif`, Body: `"Inter", sans-serif`},
		Radius: "999px",
		Shadow: "none",
	},
	{
		ID:          "atmospheric",
		Name:        "Atmospheric",
		Description: "Hazy light, deep dusk gradients and slow drifting rings. Interfaces feel like weather rather than furniture.",
		Tags:        []string{"Games", "Music", "Storytelling"},
		Examples:    []string{"Journey", "Alto's Odyssey", "Calm Sleep Stories"},
		Colors: Colors{
			BgPrimary: "#101828", BgSecondary: "rgba(255,255,255,0.06)", BgTertiary: "rgba(255,255,255,0.1)",
			TextPrimary: "#F5F3FF", TextSecondary: "#CBC5EA", TextTertiary: "#9590B5",
			Accent: "#F9A8D4", AccentSoft: "rgba(249,168,212,0.18)", Secondary: "#93C5FD",
			Border: "rgba(255,255,255,0.12)", BorderStrong: "rgba(255,255,255,0.25)",
		},
		Fonts:    Fonts{Display: `"Cormorant", serif`, Body: `"Karla", sans-serif`},
		Radius:   "24px",
		Shadow:   "0 20px 60px rgba(16,24,40,0.5)",
		Gradient: "linear-gradient(180deg, #101828 0%, #3B2F63 55%, #C0647C 100%)",
		HasNoise: true,
	},
}
