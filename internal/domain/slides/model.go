package slides

// Kind discriminates the two slide shapes in the show sequence.
type Kind string

const (
	KindLabel  Kind = "label"
	KindPlayer Kind = "player"
)

// FallbackPhotoURL is substituted when a player has no photo reference.
const FallbackPhotoURL = "/fallback-player.png"

// Slide is one unit of the public auction show: either a section label or a
// player card. Sold and GifPlayed are presentation state owned by the
// display client; every rebuild resets them to false and they are never
// written back to storage.
type Slide struct {
	ID         string
	Kind       Kind
	Label      string
	PlayerName string
	Speciality string
	AgeGroup   string
	PhotoURL   string
	IsCurrent  bool
	Sold       bool
	GifPlayed  bool
}
