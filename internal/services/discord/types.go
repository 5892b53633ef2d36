// services/discord/types.go
package discord

// Component type and style constants, message flags.
const (
	ComponentActionRow = 1
	ComponentButton    = 2

	ButtonStyleSuccess = 3
	ButtonStyleDanger  = 4

	MessageFlagEphemeral = 64

	// interaction types
	InteractionTypeComponent = 3

	// interaction response types
	ResponseChannelMessage = 4
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bot      bool   `json:"bot"`
}

type MessagePayload struct {
	Content    string      `json:"content,omitempty"`
	Embeds     []Embed     `json:"embeds,omitempty"`
	Components []ActionRow `json:"components,omitempty"`
}

type ActionRow struct {
	Type       int      `json:"type"`
	Components []Button `json:"components"`
}

type Button struct {
	Type     int    `json:"type"`
	Style    int    `json:"style"`
	Label    string `json:"label"`
	CustomID string `json:"custom_id"`
}

type Embed struct {
	Title  string       `json:"title,omitempty"`
	Color  int          `json:"color,omitempty"`
	Fields []EmbedField `json:"fields,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type InteractionResponse struct {
	Type int                      `json:"type"`
	Data *InteractionResponseData `json:"data,omitempty"`
}

type InteractionResponseData struct {
	Content string `json:"content,omitempty"`
	Flags   int    `json:"flags,omitempty"`
}

// MessageEvent is a MESSAGE_CREATE dispatch stripped to what the handlers use.
type MessageEvent struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	GuildID   string `json:"guild_id"`
	Content   string `json:"content"`
	Author    User   `json:"author"`
}

// InteractionEvent is an INTERACTION_CREATE dispatch stripped to what the
// handlers use.
type InteractionEvent struct {
	ID        string
	Token     string
	Type      int
	GuildID   string
	ChannelID string
	CustomID  string
	User      User
}
