// services/discord/client.go
package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const apiBase = "https://discord.com/api/v10"

// Client is a minimal Discord REST client covering what the bot needs:
// direct messages, channel posts, reactions, interaction responses and role
// lookups.
type Client struct {
	token string
	http  *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token: token,
		http:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, apiBase+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("discord request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discord %s %s: status %d: %s", method, path, resp.StatusCode, detail)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// SendDirectMessage opens (or reuses) the user's DM channel and posts text.
func (c *Client) SendDirectMessage(userID, text string) error {
	var channel struct {
		ID string `json:"id"`
	}
	err := c.do(http.MethodPost, "/users/@me/channels",
		map[string]string{"recipient_id": userID}, &channel)
	if err != nil {
		return err
	}
	return c.PostToChannel(channel.ID, text)
}

// PostToChannel posts plain text to a channel.
func (c *Client) PostToChannel(channelID, text string) error {
	return c.PostMessage(channelID, &MessagePayload{Content: text})
}

// PostMessage posts a full message payload (embeds, button components).
func (c *Client) PostMessage(channelID string, msg *MessagePayload) error {
	return c.do(http.MethodPost, "/channels/"+channelID+"/messages", msg, nil)
}

// ReactToMessage adds the bot's reaction to a message.
func (c *Client) ReactToMessage(channelID, messageID, emoji string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s/reactions/%s/@me",
		channelID, messageID, url.PathEscape(emoji))
	return c.do(http.MethodPut, path, nil, nil)
}

// HasRole reports whether the guild member carries the given role.
func (c *Client) HasRole(guildID, userID, roleID string) (bool, error) {
	var member struct {
		Roles []string `json:"roles"`
	}
	err := c.do(http.MethodGet, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), nil, &member)
	if err != nil {
		return false, err
	}
	for _, r := range member.Roles {
		if r == roleID {
			return true, nil
		}
	}
	return false, nil
}

// RespondToInteraction answers a button press through the interaction
// callback endpoint.
func (c *Client) RespondToInteraction(interactionID, token string, resp *InteractionResponse) error {
	path := fmt.Sprintf("/interactions/%s/%s/callback", interactionID, token)
	return c.do(http.MethodPost, path, resp, nil)
}
