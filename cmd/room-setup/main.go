package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringAdminUser step = iota
	stepEnteringAdminPassword
	stepEnteringName
	stepEnteringAddress
	stepEnteringWifiSSID
	stepEnteringWifiPass
	stepEnteringCheckIn
	stepEnteringCheckOut
	stepCreating
	stepComplete
)

type field struct {
	prompt string
	name   string
	masked bool
}

// The wizard walks these in order; admin credentials first, then the
// required room fields, then the optional times.
var fields = []field{
	{"Admin username:", "admin_user", false},
	{"Admin password:", "admin_pass", true},
	{"Property name:", "name", false},
	{"Full address:", "address", false},
	{"Wifi SSID:", "wifi_ssid", false},
	{"Wifi password:", "wifi_pass", false},
	{"Check-in time (e.g. 3:00 PM):", "checkin", false},
	{"Check-out time (e.g. 11:00 AM):", "checkout", false},
}

type model struct {
	step         step
	values       map[string]string
	currentInput string
	serverURL    string
	slug         string
	message      string
	quitting     bool
}

type createSuccessMsg struct{ slug string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(serverURL string) model {
	return model{
		step:      stepEnteringAdminUser,
		values:    map[string]string{},
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func createRoom(serverURL string, values map[string]string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 15 * time.Second}

		form := url.Values{}
		for _, f := range fields[2:] {
			form.Set(f.name, values[f.name])
		}

		req, err := http.NewRequest("POST", serverURL+"/api/v1/rooms", strings.NewReader(form.Encode()))
		if err != nil {
			return errMsg{err}
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.SetBasicAuth(values["admin_user"], values["admin_pass"])

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		var result struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Data    struct {
				Slug string `json:"slug"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		if resp.StatusCode == http.StatusUnauthorized {
			return errMsg{fmt.Errorf("admin credentials rejected")}
		}
		if !result.Success {
			if result.Message == "" {
				result.Message = fmt.Sprintf("server returned %d", resp.StatusCode)
			}
			return errMsg{fmt.Errorf("%s", result.Message)}
		}

		return createSuccessMsg{slug: result.Data.Slug}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			if m.step == stepComplete {
				m.quitting = true
				return m, tea.Quit
			}
			if int(m.step) < len(fields) {
				f := fields[m.step]
				// Optional trailing fields may stay blank
				if m.currentInput == "" && m.step < stepEnteringCheckIn {
					return m, nil
				}
				m.values[f.name] = m.currentInput
				m.currentInput = ""
				m.step++
				if m.step == stepCreating {
					m.message = "Creating room..."
					return m, createRoom(m.serverURL, m.values)
				}
			}

		default:
			if int(m.step) < len(fields) {
				m.currentInput += msg.String()
			}
		}

	case createSuccessMsg:
		m.slug = msg.slug
		m.step = stepComplete
		m.message = successStyle.Render("✓ Room created!")

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringName
		m.currentInput = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🏠 Concierge Room Setup\n\n"))

	if int(m.step) < len(fields) {
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		f := fields[m.step]
		s.WriteString(promptStyle.Render(f.prompt + "\n"))
		shown := m.currentInput
		if f.masked {
			shown = strings.Repeat("•", len(m.currentInput))
		}
		s.WriteString(inputStyle.Render("> " + shown))
		s.WriteString("\n\nPress Enter\n")
		return s.String()
	}

	switch m.step {
	case stepCreating:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n\n")
		s.WriteString(fmt.Sprintf("Guest link: %s/%s\n", m.serverURL, m.slug))
		s.WriteString(fmt.Sprintf("QR code:    https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=%s/%s\n", m.serverURL, m.slug))
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	serverURL := defaultServerURL
	if len(os.Args) > 1 {
		serverURL = strings.TrimSuffix(os.Args[1], "/")
	}

	p := tea.NewProgram(initialModel(serverURL))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
