package content

// CardKind identifies the role of an About card.
type CardKind string

const (
	CardPhoto      CardKind = "photo"
	CardManifesto  CardKind = "manifesto"
	CardLocation   CardKind = "location"
	CardBuild      CardKind = "build"
	CardStack      CardKind = "stack"
	CardPhilosophy CardKind = "philosophy"
	CardStatus     CardKind = "status"
)

// AboutCard is one tile of the About overlay. Body is markdown for the
// manifesto and plain text elsewhere.
type AboutCard struct {
	Kind  CardKind
	Label string
	Title string
	Body  string
}

// ConnectLabel is the About overlay's closing button.
const ConnectLabel = "Initiate Connection"

const manifesto = `Developing **high-performance digital ecosystems** through algorithmic precision.
Specializing in crafting experiences that harmonize complex architectural logic
with minimalist, high-fidelity aesthetics. Optimized in *Tamil Nadu* for global scale.`

// AboutCards returns the About tiles in layout order.
func AboutCards() []AboutCard {
	return []AboutCard{
		{Kind: CardPhoto, Title: "Ellen.sys", Body: "v6.0.0 // ENGINEERING"},
		{Kind: CardManifesto, Label: "Manifesto", Body: manifesto},
		{Kind: CardLocation, Label: "Node Location", Title: "11.01°N, 76.95°E"},
		{Kind: CardBuild, Label: "Build Version (Years)", Title: "6.0.0"},
		{Kind: CardStack, Label: "Daily Stack"},
		{Kind: CardPhilosophy, Body: "// code is poetry\noptimized for performance"},
		{Kind: CardStatus, Body: "System active. Seeking collaborative protocols."},
	}
}

// Stack returns the daily stack shown in the About marquee.
func Stack() []string {
	return []string{"React", "TypeScript", "Web3", "Rust", "Docker", "AWS", "TensorFlow", "Python", "Go", "Swift"}
}
