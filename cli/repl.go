package cli

import (
	"coinwidget/models"
	"coinwidget/prefs"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

// Shell is the interactive CLI for a remote coinwidget server
type Shell struct {
	rl      *readline.Instance
	running bool
	client  *Client
	config  *Config
}

// NewShell connects to serverURL and prepares the readline prompt.
// cfg may be nil, in which case the servers command is unavailable.
func NewShell(serverURL string, cfg *Config) (*Shell, error) {
	client := NewClient(serverURL)

	if err := client.HealthCheck(); err != nil {
		return nil, fmt.Errorf("cannot connect to server: %v", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %v", err)
	}

	return &Shell{
		rl:      rl,
		running: true,
		client:  client,
		config:  cfg,
	}, nil
}

// Start runs the command loop until exit or EOF
func (s *Shell) Start() {
	defer s.rl.Close()
	s.printWelcome()

	for s.running {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println("\n⚠ Ctrl+C detected. Please use 'exit' or 'quit' command to exit gracefully.")
				continue
			}
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		s.handleCommand(input)
	}
}

func (s *Shell) printWelcome() {
	PrintBanner("Coin Widget - CLI Mode")
	fmt.Printf("\nConnected to: %s\n", s.client.baseURL)
	fmt.Println("Type 'help' for available commands")
}

func (s *Shell) handleCommand(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "h", "?":
		s.showHelp()
	case "show", "get":
		s.withWidgetID(args, "show <id>", s.showWidget)
	case "setup":
		s.withWidgetID(args, "setup <id>", s.setupWidget)
	case "set":
		s.handleSet(args)
	case "temp":
		s.handleTemp(args)
	case "cleanup":
		s.withWidgetID(args, "cleanup <id>", s.cleanupWidget)
	case "delete", "del", "rm":
		s.withWidgetID(args, "delete <id>", s.deleteWidget)
	case "servers":
		s.handleServers(args)
	case "clear":
		fmt.Print("\033[H\033[2J")
	case "exit", "quit", "q":
		fmt.Println("\nGoodbye!")
		s.running = false
	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}
}

func (s *Shell) showHelp() {
	fmt.Println()
	PrintBanner("Available Commands")
	fmt.Println()

	commands := [][]string{
		{"help, h, ?", "Show this help message"},
		{"", ""},
		{"WIDGETS:", ""},
		{"show <id>", "Show every resolved setting of a widget"},
		{"setup <id>", "Configure a widget (interactive)"},
		{"set <id> <key> <value|null>", "Write one raw field"},
		{"temp <id> on|off", "Mark or unmark a widget as temporary"},
		{"cleanup <id>", "Delete the widget if it is still temporary"},
		{"delete <id>", "Delete every setting of a widget"},
		{"", ""},
		{"SERVERS:", ""},
		{"servers", "List configured servers"},
		{"servers add <name> <url>", "Add a server to the config file"},
		{"servers use <name>", "Make a server the default"},
		{"", ""},
		{"SYSTEM:", ""},
		{"clear", "Clear screen"},
		{"exit, quit, q", "Exit the program"},
	}

	for _, cmd := range commands {
		if cmd[0] != "" {
			fmt.Printf("  %-30s %s\n", cmd[0], cmd[1])
		} else {
			fmt.Println()
		}
	}

	fmt.Printf("\nKeys: %s\n", strings.Join(keyNames(), ", "))
}

func (s *Shell) withWidgetID(args []string, usage string, fn func(int)) {
	if len(args) < 1 {
		fmt.Printf("Usage: %s\n", usage)
		return
	}
	id, err := parseWidgetID(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fn(id)
}

func (s *Shell) showWidget(id int) {
	view, err := s.client.GetWidget(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	PrintBanner(fmt.Sprintf("Widget %d", view.ID))
	fmt.Println()

	rows := [][2]string{
		{"Coin", fmt.Sprintf("%s (exchange name: %s)", view.Coin, orDash(view.ExchangeCoinName))},
		{"Currency", fmt.Sprintf("%s (exchange name: %s)", orDash(view.Currency), orDash(view.ExchangeCurrencyName))},
		{"Exchange", string(view.Exchange)},
		{"Refresh", fmt.Sprintf("%d min", view.Interval)},
		{"Theme", fmt.Sprintf("%s -> %s", orDash(view.Theme), view.Layout)},
		{"Transparent", strconv.FormatBool(view.Transparent)},
		{"Unit", orDash(view.Unit)},
		{"Label", strconv.FormatBool(view.LabelShown)},
		{"Icon", strconv.FormatBool(view.IconShown)},
		{"Decimals", strconv.FormatBool(view.ShowDecimals)},
		{"Text size", fmt.Sprintf("portrait %s, landscape %s", formatSize(view.PortraitTextSize), formatSize(view.LandscapeTextSize))},
		{"Last value", orDash(view.LastValue)},
		{"Last update", formatMillis(view.LastUpdate)},
		{"Temporary", strconv.FormatBool(view.Temporary)},
	}
	for _, row := range rows {
		fmt.Printf("  %-14s %s\n", row[0]+":", row[1])
	}
}

func (s *Shell) setupWidget(id int) {
	fmt.Println()
	PrintBanner(fmt.Sprintf("Set Up Widget %d (Interactive)", id))
	fmt.Println("\nPress Ctrl+C anytime to cancel")

	req := models.WidgetSetup{}
	cancelled := false
	ask := func(prompt, def string) string {
		if cancelled {
			return ""
		}
		input, c := s.readInputWithCancel(prompt, def)
		cancelled = c
		return input
	}

	for !cancelled {
		input := ask("Coin ("+strings.Join(coinNames(), ", ")+")", string(prefs.DefaultCoin))
		if _, ok := prefs.ParseCoin(strings.ToUpper(input)); ok || cancelled {
			req.Coin = input
			break
		}
		fmt.Println("❌ Unknown coin.")
	}
	for !cancelled {
		if req.Currency = ask("Currency (required)", ""); req.Currency != "" || cancelled {
			break
		}
		fmt.Println("❌ Currency cannot be empty.")
	}
	req.Exchange = ask("Exchange", string(prefs.DefaultExchange()))
	for !cancelled {
		input := ask("Refresh interval in minutes", strconv.Itoa(prefs.DefaultInterval))
		refresh, err := strconv.Atoi(input)
		if err == nil && refresh > 0 || cancelled {
			req.Refresh = refresh
			break
		}
		fmt.Println("❌ Refresh must be a positive number.")
	}
	req.Theme = ask("Theme (Light, Dark, Transparent Dark, DayNight, Transparent DayNight, Transparent)", string(prefs.ThemeLight))
	req.ShowLabel = parseYesNo(ask("Show label (y/n)", "n"))
	showIcon := parseYesNo(ask("Show icon (y/n)", "y"))
	req.ShowIcon = &showIcon
	showDecimals := parseYesNo(ask("Show decimals (y/n)", "y"))
	req.ShowDecimals = &showDecimals
	req.Unit = ask("Unit (optional)", "")

	if cancelled {
		fmt.Println("\n❌ Operation cancelled")
		return
	}

	view, err := s.client.SetupWidget(id, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("✓ Widget %d saved: %s/%s on %s\n", view.ID, view.Coin, view.Currency, view.Exchange)
}

func (s *Shell) handleSet(args []string) {
	if len(args) < 3 {
		fmt.Println("Usage: set <id> <key> <value|null>")
		return
	}
	id, err := parseWidgetID(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var value *string
	raw := strings.Join(args[2:], " ")
	if raw != "null" {
		value = &raw
	}

	if err := s.client.SetField(id, args[1], value); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("✓ %s updated\n", args[1])
}

func (s *Shell) handleTemp(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: temp <id> on|off")
		return
	}
	id, err := parseWidgetID(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	on, ok := parseToggle(args[1])
	if !ok {
		fmt.Println("Usage: temp <id> on|off")
		return
	}

	if err := s.client.MarkTemporary(id, on); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("✓ Widget %d temporary=%t\n", id, on)
}

func (s *Shell) cleanupWidget(id int) {
	deleted, err := s.client.Cleanup(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if deleted {
		fmt.Printf("✓ Temporary widget %d deleted\n", id)
	} else {
		fmt.Printf("Widget %d is not temporary, kept\n", id)
	}
}

func (s *Shell) deleteWidget(id int) {
	input, cancelled := s.readInputWithCancel(fmt.Sprintf("Delete every setting of widget %d? (y/n)", id), "n")
	if cancelled || !parseYesNo(input) {
		fmt.Println("Cancelled")
		return
	}
	if err := s.client.DeleteWidget(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("✓ Widget %d deleted\n", id)
}

func (s *Shell) handleServers(args []string) {
	if s.config == nil {
		fmt.Println("No CLI config file loaded")
		return
	}

	if len(args) == 0 || args[0] == "list" || args[0] == "ls" {
		for _, name := range s.config.ServerNames() {
			marker := " "
			if name == s.config.DefaultServer {
				marker = "*"
			}
			server := s.config.Servers[name]
			fmt.Printf(" %s %-15s %-30s %s\n", marker, name, server.URL, server.Description)
		}
		return
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			fmt.Println("Usage: servers add <name> <url>")
			return
		}
		if err := s.config.AddServer(args[1], args[2], strings.Join(args[3:], " ")); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✓ Server %s added\n", args[1])
	case "use":
		if len(args) < 2 {
			fmt.Println("Usage: servers use <name>")
			return
		}
		if err := s.config.SetDefault(args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✓ Default server is now %s (takes effect on next start)\n", args[1])
	default:
		fmt.Printf("Unknown servers command: %s\n", args[0])
	}
}

// readInputWithCancel prompts with an optional default; the bool reports Ctrl+C
func (s *Shell) readInputWithCancel(prompt, defaultValue string) (string, bool) {
	if defaultValue != "" {
		s.rl.SetPrompt(fmt.Sprintf("%s [%s]: ", prompt, defaultValue))
	} else {
		s.rl.SetPrompt(fmt.Sprintf("%s: ", prompt))
	}

	line, err := s.rl.Readline()
	s.rl.SetPrompt("> ")

	return promptResult(line, err, defaultValue)
}

// promptResult maps one Readline result to the answer and a cancel flag.
// Ctrl+C and EOF both cancel so prompt loops cannot spin on closed input.
func promptResult(line string, err error, defaultValue string) (string, bool) {
	if err != nil {
		if err == readline.ErrInterrupt || errors.Is(err, io.EOF) {
			return "", true
		}
		return defaultValue, false
	}

	input := strings.TrimSpace(line)
	if input == "" && defaultValue != "" {
		return defaultValue, false
	}
	return input, false
}

func parseWidgetID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid widget id %q", raw)
	}
	return id, nil
}

func parseToggle(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "on", "true", "yes", "1":
		return true, true
	case "off", "false", "no", "0":
		return false, true
	}
	return false, false
}

func parseYesNo(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}

func keyNames() []string {
	keys := prefs.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

func coinNames() []string {
	coins := prefs.Coins()
	names := make([]string, len(coins))
	for i, c := range coins {
		names[i] = string(c)
	}
	return names
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatSize(size float32) string {
	if size == prefs.TextSizeUnset {
		return "unset"
	}
	return strconv.FormatFloat(float64(size), 'f', -1, 32)
}

func formatMillis(ms int64) string {
	if ms <= 0 {
		return "never"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
}
