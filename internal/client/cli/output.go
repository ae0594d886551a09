package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// ErrRequestFailed оборачивает ответ success=false
var ErrRequestFailed = errors.New("request failed")

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	headerColor  = color.New(color.Bold)
	dimColor     = color.New(color.Faint)
)

func (c *Cli) header(title string) {
	if c.flags.json {
		return
	}
	c.io.Println(headerColor.Sprintf("=== %s ===", title))
	c.io.Println()
}

func (c *Cli) success(format string, a ...any) {
	if c.flags.json {
		return
	}
	c.io.Println(successColor.Sprintf("✓ "+format, a...))
}

func (c *Cli) warn(format string, a ...any) {
	c.io.Println(warnColor.Sprintf("⚠️  "+format, a...))
}

func (c *Cli) printJSON(v any) error {
	enc := json.NewEncoder(c.io)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// unwrap возвращает данные успешного конверта или ErrRequestFailed
// с сообщением сервера
func unwrap[T any](resp *api.Response[T]) (*T, error) {
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "server reported failure"
		}
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, msg)
	}
	if resp.Data == nil {
		return new(T), nil
	}
	return resp.Data, nil
}

// show печатает v как JSON или через text
func show[T any](c *Cli, resp *api.Response[T], text func(*T)) error {
	data, err := unwrap(resp)
	if err != nil {
		return err
	}
	if c.flags.json {
		return c.printJSON(data)
	}
	text(data)
	return nil
}

func (c *Cli) printProfile(p *api.UserProfile) {
	c.io.Printf("ID:          %s\n", p.ID)
	c.io.Printf("Name:        %s\n", strings.TrimSpace(p.FirstName+" "+p.LastName))
	field := func(label, value string) {
		if value != "" {
			c.io.Printf("%-12s %s\n", label+":", value)
		}
	}
	field("Email", p.Email)
	field("Gender", p.Gender)
	if p.Age > 0 {
		field("Age", fmt.Sprint(p.Age))
	}
	field("Born", p.DateOfBirth)
	if p.Height > 0 {
		field("Height", fmt.Sprintf("%d cm", p.Height))
	}
	field("Marital", p.MaritalStatus)
	field("Religion", p.Religion)
	field("Caste", p.Caste)
	field("Language", p.MotherTongue)
	field("Education", p.Education)
	field("Occupation", p.Occupation)
	field("Income", p.AnnualIncome)
	field("Location", joinNonEmpty(", ", p.City, p.State, p.Country))
	field("About", p.About)

	var badges []string
	if p.IsVerified {
		badges = append(badges, "verified")
	}
	if p.IsPremium {
		badges = append(badges, "premium")
	}
	field("Badges", strings.Join(badges, ", "))
}

// profileLine однострочное описание анкеты для списков
func profileLine(p api.UserProfile) string {
	parts := []string{strings.TrimSpace(p.FirstName + " " + p.LastName)}
	if p.Age > 0 {
		parts = append(parts, fmt.Sprintf("%d", p.Age))
	}
	if p.City != "" {
		parts = append(parts, p.City)
	}
	if p.Occupation != "" {
		parts = append(parts, p.Occupation)
	}
	return strings.Join(parts, ", ")
}

func (c *Cli) printPage(shown, total int, hasMore bool) {
	c.io.Println()
	line := fmt.Sprintf("Showing %d of %d", shown, total)
	if hasMore {
		line += " (use --offset for more)"
	}
	c.io.Println(dimColor.Sprint(line))
}

func joinNonEmpty(sep string, values ...string) string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
