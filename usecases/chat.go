package usecases

import (
	"context"
	"fmt"
	"strings"

	"concierge-server/ai"
	"concierge-server/entities"
	"concierge-server/repositories"

	log "github.com/sirupsen/logrus"
)

const roomNotFoundReply = "I couldn't find the room details."

// ChatUseCase assembles per-room context for the concierge: it fetches
// the room, normalizes the guest's conversation history, builds the
// system prompt and maps the provider's answer (or failure) into the
// uniform chat envelope. No error escapes SendMessage.
type ChatUseCase struct {
	RoomRepo repositories.RoomRepository
	Provider ai.Provider
}

func NewChatUseCase(roomRepo repositories.RoomRepository, provider ai.Provider) *ChatUseCase {
	return &ChatUseCase{
		RoomRepo: roomRepo,
		Provider: provider,
	}
}

// SendMessage answers one guest message for the room identified by slug.
func (uc *ChatUseCase) SendMessage(ctx context.Context, slug, message string, history []entities.ChatTurn) entities.ChatResult {
	room, err := uc.RoomRepo.GetBySlug(slug)
	if err != nil || room == nil {
		log.Warnf("chat: room lookup failed for slug %q: %v", slug, err)
		return entities.ChatResult{Success: false, Response: roomNotFoundReply}
	}

	cleanHistory := normalizeHistory(history)
	prompt := buildSystemPrompt(room)

	text, err := uc.Provider.Generate(ctx, prompt, cleanHistory, message)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Unknown error"
		}
		log.Errorf("chat: provider call failed for slug %q: %v", slug, err)
		return entities.ChatResult{Success: false, Response: "System Error: " + msg}
	}

	return entities.ChatResult{Success: true, Response: text}
}

// normalizeHistory maps turns onto the provider's role vocabulary: user
// stays user, everything else becomes the model role. The provider
// requires conversations to open with a user turn, so a single leading
// model turn (the client's canned welcome message) is dropped.
func normalizeHistory(history []entities.ChatTurn) []ai.Turn {
	clean := make([]ai.Turn, 0, len(history))
	for _, turn := range history {
		role := ai.RoleModel
		if turn.Role == entities.RoleUser {
			role = ai.RoleUser
		}
		clean = append(clean, ai.Turn{Role: role, Text: turn.Text})
	}

	if len(clean) > 0 && clean[0].Role == ai.RoleModel {
		clean = clean[1:]
	}
	return clean
}

// buildSystemPrompt embeds the room's knowledge base and the fixed
// concierge policy, plus the visual guide block when the gallery has
// items.
func buildSystemPrompt(room *entities.Room) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the Concierge for %q.\n\n", room.Name)

	b.WriteString("[KNOWLEDGE BASE]\n")
	fmt.Fprintf(&b, "- Address: %s\n", room.Address)
	fmt.Fprintf(&b, "- Wifi SSID: %s\n", room.WifiSSID)
	fmt.Fprintf(&b, "- Wifi Password: %s\n", room.WifiPass)
	fmt.Fprintf(&b, "- AC Instructions: %s\n", room.ACGuide)
	fmt.Fprintf(&b, "- House Rules: %s\n", room.Rules)
	b.WriteString(room.Guidebook())
	b.WriteString("\n\n")

	b.WriteString("[INSTRUCTIONS]\n")
	b.WriteString("- Only answer questions about this property: access, wifi, appliances, house rules, facilities, check-in and check-out, trash, laundry and nearby tips.\n")
	b.WriteString("- Answer politely and briefly (under 50 words).\n")
	b.WriteString("- Never discuss pricing, refunds, other guests, the host's personal details or anything outside the knowledge base.\n")
	b.WriteString("- If the answer is not in the knowledge base, tell the guest to contact the host rather than guessing.\n")

	if len(room.Gallery) > 0 {
		b.WriteString("\n[VISUAL GUIDES]\n")
		for _, item := range room.Gallery {
			fmt.Fprintf(&b, "- %s: %s\n", item.Label, item.URL)
		}
		b.WriteString("When the guest's question matches one of these items, include the image in your answer as markdown: ![label](url).\n")
	}

	return b.String()
}
