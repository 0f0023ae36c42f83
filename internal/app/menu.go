package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gutenmail/gutenctl/internal/catalog"
	"github.com/gutenmail/gutenctl/internal/filter"
	"github.com/gutenmail/gutenctl/internal/mail"
	"github.com/gutenmail/gutenctl/internal/render"
	"github.com/gutenmail/gutenctl/internal/sheets"
	"github.com/gutenmail/gutenctl/internal/stats"
)

const (
	conditionsWrap = 58
	detailWrap     = 56

	noAction = "Not applicable. It is not possible to filter further books"
)

var (
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// requestLog is the part of sheets.RequestLog the menu needs.
type requestLog interface {
	Append(bookID int, channel string) error
	Entries() ([]stats.Entry, error)
}

// downloader is the part of gutenberg.Client the menu needs.
type downloader interface {
	Download(dir string, id int, withImages bool, format string) (string, error)
}

// Menu drives the interactive numbered-option loop. Each action runs to
// completion before the next prompt; there is no concurrency.
type Menu struct {
	Source     catalog.Source
	Log        requestLog
	Fetcher    downloader
	Sender     mail.Sender
	Dir        string
	Format     string
	WithImages bool

	in      *bufio.Scanner
	out     io.Writer
	session *Session
}

// NewMenu wires a menu over the given collaborators, reading options from
// in and writing to out.
func NewMenu(in io.Reader, out io.Writer) *Menu {
	return &Menu{
		Sender: mail.LogSender{Out: out},
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// runMenu is the root-command entry: wire real collaborators and loop.
func runMenu() error {
	cat, log, fetcher, err := collaborators()
	if err != nil {
		return err
	}
	m := NewMenu(os.Stdin, os.Stdout)
	m.Source = cat
	m.Log = log
	m.Fetcher = fetcher
	m.Dir = cfg.Defaults.DownloadDir
	m.Format = cfg.Defaults.Format
	m.WithImages = cfg.Defaults.WithImages
	return m.Run()
}

// Run fetches the catalog and loops until the user quits.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "Opening catalog data...")
	records, err := m.Source.FetchAll()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	m.session = NewSession(records)

	for {
		m.clear()
		m.printFrame()
		opt := strings.ToLower(m.prompt("Select a option (press \"q\" to exit)?"))

		switch opt {
		case "1":
			m.search(filter.AnyField, "Enter the author or title to search?", true)
		case "2":
			m.search(filter.ByID, "Enter the ID to search?", true)
		case "3":
			m.addCondition(filter.ByAuthor, "Enter the author to search?")
		case "4":
			m.addCondition(filter.ByTitle, "Enter the title to search?")
		case "5":
			m.addCondition(filter.ByLanguage, "Enter the language to filter (en/es/fr/it)?")
		case "6":
			m.session.Reset()
			m.pause("All conditions reset...")
		case "7":
			m.showResults()
		case "8":
			m.sendEbook()
		case "9":
			m.showStatistics()
		case "q":
			return nil
		case "":
		default:
			m.pause(fmt.Sprintf("Error: Unknown option selected %q", opt))
		}
	}
}

// search runs a condition-reset action (menu options 1 and 2).
func (m *Menu) search(t filter.Template, promptMsg string, reset bool) {
	input := m.prompt(promptMsg)
	action, err := t.Build(input)
	if err != nil {
		if errors.Is(err, filter.ErrInvalidInput) {
			m.pause("Error: the value is not a number integer...")
			return
		}
		m.pause(fmt.Sprintf("Error: %v", err))
		return
	}
	if action.Empty() {
		return
	}

	m.session.ApplyAction(action, reset)
	if len(m.session.Filtered) == 0 {
		m.pause(fmt.Sprintf("No data found with the conditions: %s", action.Input))
		return
	}
	render.Table(m.out, m.session.Filtered)
	m.pause("")
}

// addCondition narrows the current result further (menu options 3-5).
// Refused when one book or fewer remains — there is nothing to narrow.
func (m *Menu) addCondition(t filter.Template, promptMsg string) {
	if len(m.session.Filtered) <= 1 {
		m.pause(noAction)
		return
	}
	m.search(t, promptMsg, false)
}

func (m *Menu) showResults() {
	if m.session.Registry.Len() == 0 {
		m.pause("First select some conditions to show some result")
		return
	}
	render.Table(m.out, m.session.Filtered)
	m.pause("")
}

// sendEbook downloads the single selected book and records the request.
// The log row is appended only after download and delivery both succeed.
func (m *Menu) sendEbook() {
	if len(m.session.Filtered) != 1 {
		m.pause(noAction)
		return
	}
	book := m.session.Filtered[0]

	address := strings.TrimSpace(m.prompt("Enter the email address of the destiny?"))
	if !mail.ValidAddress(address) {
		m.pause(fmt.Sprintf("Error: Invalid email address: %s", address))
		return
	}

	path, err := m.Fetcher.Download(m.Dir, book.ID, m.WithImages, m.Format)
	if err != nil {
		m.pause(fmt.Sprintf("Error downloading the file: %v", err))
		return
	}
	if err := m.Sender.Send(address, path); err != nil {
		m.pause(fmt.Sprintf("Error sending the ebook: %v", err))
		return
	}
	if err := m.Log.Append(book.ID, sheets.ChannelMail); err != nil {
		m.pause(fmt.Sprintf("Error updating the request log: %v", err))
		return
	}
	m.pause(fmt.Sprintf("Ebook %d sent to %s", book.ID, address))
}

func (m *Menu) showStatistics() {
	entries, err := m.Log.Entries()
	if err != nil {
		m.pause(fmt.Sprintf("Error reading the request log: %v", err))
		return
	}
	render.Statistics(m.out, stats.Aggregate(entries, stats.CatalogLookup(m.session.Catalog)))
	m.pause("")
}

// printFrame renders the status block and the numbered options.
func (m *Menu) printFrame() {
	line := func(s string) { fmt.Fprintln(m.out, frameStyle.Render(s)) }
	rule := "|" + strings.Repeat("-", 56)

	line(rule)
	conditions := fmt.Sprintf("Conditions: %s", m.session.Registry.String())
	fmt.Fprintln(m.out, statusStyle.Render(render.Wrap("| "+conditions, "| ", conditionsWrap)))
	fmt.Fprintln(m.out, statusStyle.Render(fmt.Sprintf("| Books: %d", len(m.session.Filtered))))
	if len(m.session.Filtered) == 1 {
		b := m.session.Filtered[0]
		detail := fmt.Sprintf("(Id: %d, Author: %s, Title: %s, lang: %s)",
			b.ID, b.Author, b.CleanTitle(), b.Language)
		fmt.Fprintln(m.out, statusStyle.Render(render.Wrap("| "+detail, "| ", detailWrap)))
	}
	line("|----- One condition (+ Conditions reset) ---------------")
	line("|      1. Search in any field (author or title)")
	line("|      2. Search a book for ID-Number")
	line("|----- Multiple conditions (<AND> operator) -------------")
	line("|      3. Add a author condition")
	line("|      4. Add a title condition")
	line("|      5. Add a language condition")
	line(rule)
	line("|      6. Reset conditions")
	line("|      7. Show results")
	line(rule)
	line("|      8. Send an ebook (epub) to email")
	line("|      9. See Statistics of requests")
	line(rule)
}

// prompt prints a question and reads one line.
func (m *Menu) prompt(msg string) string {
	fmt.Fprintln(m.out, msg)
	if !m.in.Scan() {
		return "q"
	}
	return m.in.Text()
}

// pause shows a message and blocks until the user presses enter.
func (m *Menu) pause(msg string) {
	if msg != "" {
		fmt.Fprintln(m.out, msg)
	}
	fmt.Fprintln(m.out, "\nPress enter to continue...")
	m.in.Scan()
}

// clear resets the terminal between menu redraws.
func (m *Menu) clear() {
	if f, isFile := m.out.(*os.File); isFile {
		fi, err := f.Stat()
		if err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			fmt.Fprint(m.out, "\x1b[H\x1b[2J")
		}
	}
}
