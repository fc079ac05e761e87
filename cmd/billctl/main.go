package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

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

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

type step int

const (
	stepEnteringIdentifier step = iota
	stepEnteringPassword
	stepLoggingIn
	stepMenu
	stepLoadingBills
	stepViewingBills
	stepLoadingCategories
	stepViewingCategories
	stepEnteringVendor
	stepEnteringAmount
	stepEnteringDate
	stepCreatingBill
	stepBillCreated
)

var menuItems = []string{
	"List recent bills",
	"Add a bill",
	"Show categories",
	"Quit",
}

type billRow struct {
	VendorName   string  `json:"vendor_name"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	BillDate     string  `json:"bill_date"`
	CategoryName *string `json:"category_name"`
	IsPaid       bool    `json:"is_paid"`
}

type categoryRow struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
}

type model struct {
	apiBase string
	step    step
	cursor  int

	identifier string
	password   string
	userID     string
	authToken  string

	bills      []billRow
	categories []categoryRow

	newVendor string
	newAmount string
	newDate   string

	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	userID   string
	username string
	token    string
}
type billsLoadedMsg []billRow
type categoriesLoadedMsg []categoryRow
type billCreatedMsg struct{ vendor string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	base := os.Getenv("BILL_API_URL")
	if base == "" {
		base = "http://localhost:5000"
	}
	return model{
		apiBase: strings.TrimRight(base, "/"),
		step:    stepEnteringIdentifier,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func apiClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return fmt.Errorf("%s", payload.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}

func login(apiBase, identifier, password string) tea.Cmd {
	return func() tea.Msg {
		payload := map[string]string{
			"email_or_username": identifier,
			"password":          password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", apiBase+"/api/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := apiClient().Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{decodeError(resp)}
		}

		var result struct {
			User struct {
				UserID   string `json:"user_id"`
				Username string `json:"username"`
			} `json:"user"`
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("bad login response: %w", err)}
		}
		return loginSuccessMsg{
			userID:   result.User.UserID,
			username: result.User.Username,
			token:    result.Token,
		}
	}
}

func loadBills(apiBase, userID, token string) tea.Cmd {
	return func() tea.Msg {
		reqURL := fmt.Sprintf("%s/api/bills/%s?limit=20", apiBase, url.PathEscape(userID))
		req, _ := http.NewRequest("GET", reqURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := apiClient().Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{decodeError(resp)}
		}

		var result struct {
			Bills []billRow `json:"bills"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("bad bills response: %w", err)}
		}
		return billsLoadedMsg(result.Bills)
	}
}

func loadCategories(apiBase, userID string) tea.Cmd {
	return func() tea.Msg {
		reqURL := fmt.Sprintf("%s/api/categories?user_id=%s", apiBase, url.QueryEscape(userID))
		resp, err := apiClient().Get(reqURL)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{decodeError(resp)}
		}

		var result struct {
			Categories []categoryRow `json:"categories"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("bad categories response: %w", err)}
		}
		return categoriesLoadedMsg(result.Categories)
	}
}

func createBill(apiBase, userID, token, vendor, amount, date string) tea.Cmd {
	return func() tea.Msg {
		value, err := strconv.ParseFloat(amount, 64)
		if err != nil || value <= 0 {
			return errMsg{fmt.Errorf("amount must be a positive number")}
		}

		payload := map[string]interface{}{
			"user_id":     userID,
			"vendor_name": vendor,
			"amount":      value,
			"bill_date":   date,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", apiBase+"/api/bills", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := apiClient().Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			return errMsg{decodeError(resp)}
		}
		return billCreatedMsg{vendor: vendor}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step == stepMenu || m.step == stepViewingBills || m.step == stepViewingCategories {
				m.quitting = true
				return m, tea.Quit
			}
			if m.isTextInput() {
				m.currentInput += "q"
			}

		case "up", "k":
			if m.step == stepMenu {
				if m.cursor > 0 {
					m.cursor--
				}
			} else if m.isTextInput() && msg.String() == "k" {
				m.currentInput += "k"
			}

		case "down", "j":
			if m.step == stepMenu {
				if m.cursor < len(menuItems)-1 {
					m.cursor++
				}
			} else if m.isTextInput() && msg.String() == "j" {
				m.currentInput += "j"
			}

		case "esc":
			if m.step == stepViewingBills || m.step == stepViewingCategories || m.step == stepBillCreated {
				m.step = stepMenu
				m.message = ""
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			return m.handleEnter()

		default:
			if m.isTextInput() {
				m.currentInput += msg.String()
			}
		}

	case loginSuccessMsg:
		m.userID = msg.userID
		m.authToken = msg.token
		m.step = stepMenu
		m.cursor = 0
		m.message = successStyle.Render("Logged in as " + msg.username)

	case billsLoadedMsg:
		m.bills = []billRow(msg)
		m.step = stepViewingBills
		m.message = ""

	case categoriesLoadedMsg:
		m.categories = []categoryRow(msg)
		m.step = stepViewingCategories
		m.message = ""

	case billCreatedMsg:
		m.step = stepBillCreated
		m.message = successStyle.Render(fmt.Sprintf("Bill for %s recorded", msg.vendor))

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		if m.step == stepLoggingIn {
			m.step = stepEnteringIdentifier
		} else {
			m.step = stepMenu
		}
	}

	return m, nil
}

func (m model) isTextInput() bool {
	switch m.step {
	case stepEnteringIdentifier, stepEnteringPassword, stepEnteringVendor, stepEnteringAmount, stepEnteringDate:
		return true
	}
	return false
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringIdentifier:
		if m.currentInput != "" {
			m.identifier = m.currentInput
			m.currentInput = ""
			m.step = stepEnteringPassword
		}

	case stepEnteringPassword:
		if m.currentInput != "" {
			m.password = m.currentInput
			m.currentInput = ""
			m.step = stepLoggingIn
			m.message = "Logging in..."
			return m, login(m.apiBase, m.identifier, m.password)
		}

	case stepMenu:
		switch m.cursor {
		case 0:
			m.step = stepLoadingBills
			m.message = "Loading bills..."
			return m, loadBills(m.apiBase, m.userID, m.authToken)
		case 1:
			m.step = stepEnteringVendor
			m.message = ""
		case 2:
			m.step = stepLoadingCategories
			m.message = "Loading categories..."
			return m, loadCategories(m.apiBase, m.userID)
		case 3:
			m.quitting = true
			return m, tea.Quit
		}

	case stepEnteringVendor:
		if m.currentInput != "" {
			m.newVendor = m.currentInput
			m.currentInput = ""
			m.step = stepEnteringAmount
		}

	case stepEnteringAmount:
		if m.currentInput != "" {
			m.newAmount = m.currentInput
			m.currentInput = ""
			m.newDate = time.Now().Format("2006-01-02")
			m.currentInput = m.newDate
			m.step = stepEnteringDate
		}

	case stepEnteringDate:
		if m.currentInput != "" {
			m.newDate = m.currentInput
			m.currentInput = ""
			m.step = stepCreatingBill
			m.message = "Recording bill..."
			return m, createBill(m.apiBase, m.userID, m.authToken, m.newVendor, m.newAmount, m.newDate)
		}

	case stepViewingBills, stepViewingCategories, stepBillCreated:
		m.step = stepMenu
		m.message = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Bill Scanner CLI\n\n"))

	switch m.step {
	case stepEnteringIdentifier:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Email or username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingBills, stepLoadingCategories, stepCreatingBill:
		s.WriteString(m.message + "\n")

	case stepMenu:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		for i, item := range menuItems {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(item)))
		}
		s.WriteString("\nUse arrows, Enter to select, q to quit\n")

	case stepViewingBills:
		s.WriteString(promptStyle.Render("Recent bills:\n\n"))
		if len(m.bills) == 0 {
			s.WriteString(normalStyle.Render("No bills yet.\n"))
		}
		for _, b := range m.bills {
			category := "-"
			if b.CategoryName != nil {
				category = *b.CategoryName
			}
			paid := " "
			if b.IsPaid {
				paid = "paid"
			}
			date := b.BillDate
			if len(date) >= 10 {
				date = date[:10]
			}
			s.WriteString(fmt.Sprintf("  %s  %-24s %s  %s %s\n",
				date, b.VendorName, amountStyle.Render(fmt.Sprintf("%8.2f %s", b.Amount, b.Currency)), category, paid))
		}
		s.WriteString("\nEnter/Esc to go back\n")

	case stepViewingCategories:
		s.WriteString(promptStyle.Render("Categories:\n\n"))
		for _, cat := range m.categories {
			marker := " "
			if cat.IsDefault {
				marker = "*"
			}
			s.WriteString(fmt.Sprintf("  %s %-20s %s\n", marker, cat.Name, cat.Color))
		}
		s.WriteString("\n* default category\nEnter/Esc to go back\n")

	case stepEnteringVendor:
		s.WriteString(promptStyle.Render("Vendor name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringAmount:
		s.WriteString(promptStyle.Render("Amount:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringDate:
		s.WriteString(promptStyle.Render("Bill date (YYYY-MM-DD):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepBillCreated:
		s.WriteString(m.message + "\n")
		s.WriteString("\nEnter/Esc for menu\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
