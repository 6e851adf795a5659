package conversation

import "github.com/google/uuid"

// State is the position of a chat session in the slot-finder flow.
type State string

const (
	StateGreeting    State = "greeting"
	StateAskCuisine  State = "ask_cuisine"
	StateAskLocation State = "ask_location"
	StateSearching   State = "searching"
	StateFarewell    State = "farewell"
)

func (s State) IsValid() bool {
	switch s {
	case StateGreeting, StateAskCuisine, StateAskLocation, StateSearching, StateFarewell:
		return true
	default:
		return false
	}
}

// Context is the partial catalog query accumulated across turns. Fields are
// explicit rather than a dynamic map so the transition table's invariants
// stay checkable.
type Context struct {
	Cuisine  string `json:"cuisine,omitempty"`
	Location string `json:"location,omitempty"`
}

func (c Context) HasCuisine() bool {
	return c.Cuisine != ""
}

func (c Context) HasLocation() bool {
	return c.Location != ""
}

func (c Context) IsEmpty() bool {
	return c.Cuisine == "" && c.Location == ""
}

type ReplyKind string

const (
	ReplyText   ReplyKind = "text"
	ReplyVenues ReplyKind = "venues"
)

// VenueHit is one catalog entry in a search reply.
type VenueHit struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	Location  string    `json:"location"`
	Rating    float64   `json:"rating"`
	PriceTier string    `json:"price_tier"`
}

// Reply is the structured answer for one processed message: either plain
// text or a short venue list with an accompanying message.
type Reply struct {
	Kind    ReplyKind  `json:"kind"`
	Message string     `json:"message"`
	Venues  []VenueHit `json:"venues,omitempty"`
}

func textReply(message string) Reply {
	return Reply{Kind: ReplyText, Message: message}
}
