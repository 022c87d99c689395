package usecases

import (
	"context"
	"errors"
	"testing"

	"concierge-server/ai"
	"concierge-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomRepo struct {
	rooms map[string]*entities.Room
}

func newFakeRoomRepo(rooms ...*entities.Room) *fakeRoomRepo {
	repo := &fakeRoomRepo{rooms: map[string]*entities.Room{}}
	for _, r := range rooms {
		repo.rooms[r.Slug] = r
	}
	return repo
}

func (f *fakeRoomRepo) Create(room *entities.Room) error {
	if _, ok := f.rooms[room.Slug]; ok {
		return errors.New("duplicate slug")
	}
	f.rooms[room.Slug] = room
	return nil
}

func (f *fakeRoomRepo) GetBySlug(slug string) (*entities.Room, error) {
	room, ok := f.rooms[slug]
	if !ok {
		return nil, errors.New("record not found")
	}
	return room, nil
}

func (f *fakeRoomRepo) GetAll() ([]entities.Room, error) {
	out := []entities.Room{}
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(room *entities.Room) error {
	f.rooms[room.Slug] = room
	return nil
}

func (f *fakeRoomRepo) UpdateGallery(slug string, gallery entities.GalleryPayload) error {
	room, ok := f.rooms[slug]
	if !ok {
		return errors.New("record not found")
	}
	room.Gallery = gallery
	return nil
}

func (f *fakeRoomRepo) Delete(slug string) error {
	delete(f.rooms, slug)
	return nil
}

// providerSpy records every Generate call and replies with a canned
// answer or error.
type providerSpy struct {
	calls   int
	system  string
	history []ai.Turn
	message string
	reply   string
	err     error
}

func (p *providerSpy) Generate(ctx context.Context, system string, history []ai.Turn, message string) (string, error) {
	p.calls++
	p.system = system
	p.history = history
	p.message = message
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func testRoom() *entities.Room {
	return &entities.Room{
		Slug:     "loft-a1b2c3",
		Name:     "The Loft",
		Address:  "Old Klang Road, KL",
		WifiSSID: "LoftNet",
		WifiPass: "ABC123",
		ACGuide:  "Use the white remote",
		Rules:    "No smoking",
		CheckIn:  "3:00 PM",
		CheckOut: "11:00 AM",
	}
}

func TestSendMessageUnknownSlugSkipsProvider(t *testing.T) {
	spy := &providerSpy{reply: "hello"}
	uc := NewChatUseCase(newFakeRoomRepo(), spy)

	result := uc.SendMessage(context.Background(), "no-such-room", "hi", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "I couldn't find the room details.", result.Response)
	assert.Zero(t, spy.calls, "provider must not be contacted when the room is missing")
}

func TestSendMessageSuccessEnvelope(t *testing.T) {
	spy := &providerSpy{reply: "The wifi password is ABC123."}
	uc := NewChatUseCase(newFakeRoomRepo(testRoom()), spy)

	result := uc.SendMessage(context.Background(), "loft-a1b2c3", "What is the wifi password?", nil)

	require.True(t, result.Success)
	assert.Equal(t, "The wifi password is ABC123.", result.Response)
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, "What is the wifi password?", spy.message)
}

func TestSendMessageProviderErrorEnvelope(t *testing.T) {
	spy := &providerSpy{err: errors.New("rate limited")}
	uc := NewChatUseCase(newFakeRoomRepo(testRoom()), spy)

	result := uc.SendMessage(context.Background(), "loft-a1b2c3", "hi", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "System Error: rate limited", result.Response)
}

func TestSendMessageBlankProviderError(t *testing.T) {
	spy := &providerSpy{err: errors.New("")}
	uc := NewChatUseCase(newFakeRoomRepo(testRoom()), spy)

	result := uc.SendMessage(context.Background(), "loft-a1b2c3", "hi", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "System Error: Unknown error", result.Response)
}

func TestNormalizeHistoryDropsLeadingModelTurn(t *testing.T) {
	history := []entities.ChatTurn{
		{Role: entities.RoleAssistant, Text: "Welcome!"},
		{Role: entities.RoleUser, Text: "hi"},
		{Role: entities.RoleAssistant, Text: "hello"},
		{Role: entities.RoleUser, Text: "wifi?"},
	}

	clean := normalizeHistory(history)

	require.Len(t, clean, 3)
	assert.Equal(t, []ai.Turn{
		{Role: ai.RoleUser, Text: "hi"},
		{Role: ai.RoleModel, Text: "hello"},
		{Role: ai.RoleUser, Text: "wifi?"},
	}, clean)
}

func TestNormalizeHistoryDropsOnlyOneLeadingTurn(t *testing.T) {
	history := []entities.ChatTurn{
		{Role: entities.RoleAssistant, Text: "Welcome!"},
		{Role: entities.RoleAssistant, Text: "Anything I can do?"},
		{Role: entities.RoleUser, Text: "hi"},
	}

	clean := normalizeHistory(history)

	// A single leading-element removal, not a loop
	require.Len(t, clean, 2)
	assert.Equal(t, ai.RoleModel, clean[0].Role)
	assert.Equal(t, "Anything I can do?", clean[0].Text)
}

func TestNormalizeHistoryIdentityWhenUserFirst(t *testing.T) {
	history := []entities.ChatTurn{
		{Role: entities.RoleUser, Text: "hi"},
		{Role: entities.RoleAssistant, Text: "hello"},
	}

	clean := normalizeHistory(history)

	require.Len(t, clean, 2)
	assert.Equal(t, "hi", clean[0].Text)
	assert.Equal(t, ai.RoleUser, clean[0].Role)
	assert.Equal(t, "hello", clean[1].Text)
	assert.Equal(t, ai.RoleModel, clean[1].Role)
}

func TestNormalizeHistoryUnknownRoleBecomesModel(t *testing.T) {
	history := []entities.ChatTurn{
		{Role: entities.RoleUser, Text: "hi"},
		{Role: "system", Text: "weird"},
	}

	clean := normalizeHistory(history)

	require.Len(t, clean, 2)
	assert.Equal(t, ai.RoleModel, clean[1].Role)
}

func TestNormalizeHistoryEmpty(t *testing.T) {
	assert.Empty(t, normalizeHistory(nil))
}

func TestSystemPromptEmbedsKnowledgeBase(t *testing.T) {
	room := testRoom()
	spy := &providerSpy{reply: "ok"}
	uc := NewChatUseCase(newFakeRoomRepo(room), spy)

	uc.SendMessage(context.Background(), room.Slug, "hi", nil)

	for _, want := range []string{
		`"The Loft"`,
		"Old Klang Road, KL",
		"LoftNet",
		"ABC123",
		"Use the white remote",
		"No smoking",
		"CHECK-IN: 3:00 PM",
		"CHECK-OUT: 11:00 AM",
		"contact the host",
	} {
		assert.Contains(t, spy.system, want)
	}
	assert.NotContains(t, spy.system, "[VISUAL GUIDES]", "no gallery, no visual block")
}

func TestSystemPromptListsGalleryItems(t *testing.T) {
	room := testRoom()
	room.Gallery = entities.GalleryPayload{
		{ID: "g1", Label: "Heater", URL: "U1"},
	}
	spy := &providerSpy{reply: "ok"}
	uc := NewChatUseCase(newFakeRoomRepo(room), spy)

	uc.SendMessage(context.Background(), room.Slug, "how does the heater work?", nil)

	assert.Contains(t, spy.system, "Heater")
	assert.Contains(t, spy.system, "U1")
	assert.Contains(t, spy.system, "[VISUAL GUIDES]")
	assert.Contains(t, spy.system, "markdown")
}
