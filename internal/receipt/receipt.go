// Package receipt renders the membership application receipt handed to
// applicants for payment at the office.
package receipt

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"

	"redcross/internal/model"
)

// NumberPrefix starts every receipt number.
const NumberPrefix = "IRCS-TR-"

// Pricing is the fee shown for a membership tier.
type Pricing struct {
	Amount      int // rupees; 0 means decided by the office
	Description string
}

// AmountLabel is the text printed in the "Amount to Pay" row.
func (p Pricing) AmountLabel() string {
	if p.Amount == 0 {
		return "To be determined"
	}
	return fmt.Sprintf("Rs %d", p.Amount)
}

var pricing = map[model.MembershipType]Pricing{
	model.MembershipIndividual: {Amount: 500, Description: "Individual Membership (1 Year)"},
	model.MembershipFamily:     {Amount: 1000, Description: "Family Membership (1 Year)"},
	model.MembershipCorporate:  {Amount: 0, Description: "Corporate Membership (Contact Office)"},
}

// PriceFor returns the pricing of a tier; unknown tiers are priced as individual.
func PriceFor(t model.MembershipType) Pricing {
	if p, ok := pricing[t]; ok {
		return p
	}
	return pricing[model.MembershipIndividual]
}

var paymentInstructions = []string{
	"1. Please visit our office at Red Cross Bhavan, Agartala during office hours.",
	"2. Present this receipt to complete your membership registration.",
	"3. Payment can be made in cash or by demand draft.",
	"4. Office Hours: Monday to Friday, 10:00 AM - 5:00 PM",
	"5. For queries, contact: +91 9774137698 or ircstrp@gmail.com",
}

var ist = time.FixedZone("IST", 5*60*60+30*60)

// Receipt is a rendered receipt. It is never persisted.
type Receipt struct {
	Number string
	PDF    []byte
}

// Generator renders receipts.
type Generator struct {
	now    func() time.Time
	random func(n int) int

	mu   sync.Mutex
	last string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRandom replaces the random suffix source; fn returns a value in [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(g *Generator) { g.random = fn }
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now, random: rand.IntN}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// nextNumber builds the receipt number from the last six digits of the
// millisecond clock and a three digit random suffix. Numbers are advisory,
// but two consecutive calls never return the same value.
func (g *Generator) nextNumber(at time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := at.UnixMilli() % 1_000_000
	suffix := g.random(1000)
	n := fmt.Sprintf("%s%06d%03d", NumberPrefix, stamp, suffix)
	if n == g.last {
		n = fmt.Sprintf("%s%06d%03d", NumberPrefix, stamp, (suffix+1)%1000)
	}
	g.last = n
	return n
}

// Generate renders a receipt for member.
func (g *Generator) Generate(member *model.Member) (*Receipt, error) {
	if member == nil {
		return nil, fmt.Errorf("generate receipt: nil member")
	}
	now := g.now()
	number := g.nextNumber(now)
	price := PriceFor(member.MembershipType)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(now)
	pdf.SetTitle("Membership Receipt "+number, false)
	pdf.SetAuthor("Indian Red Cross Society - Tripura State Branch", false)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	// Core fonts are cp1252; applicant data arrives as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetTextColor(220, 38, 38)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Indian Red Cross Society", "", 1, "L", false, 0, "")
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Tripura State Branch", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Red Cross Bhavan, Agartala, Tripura 799001", "", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "MEMBERSHIP APPLICATION RECEIPT", "", 1, "C", false, 0, "")

	// Details box
	pdf.Ln(6)
	boxTop := pdf.GetY()
	rows := [][2]string{
		{"Receipt Number:", number},
		{"Date:", now.In(ist).Format("02/01/2006")},
		{"Applicant Name:", orNA(member.FullName)},
		{"Email:", orNA(member.Email)},
		{"Phone:", orNA(member.Phone)},
		{"Membership Type:", price.Description},
		{"Amount to Pay:", price.AmountLabel()},
	}
	pdf.SetDrawColor(220, 38, 38)
	pdf.Rect(18, boxTop, 174, float64(len(rows))*9+8, "D")
	pdf.SetY(boxTop + 4)
	for _, row := range rows {
		pdf.SetX(24)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(45, 9, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 9, tr(row[1]), "", 1, "L", false, 0, "")
	}

	// Payment instructions
	pdf.Ln(14)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "PAYMENT INSTRUCTIONS", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range paymentInstructions {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, "Note: This is a computer-generated receipt. Please keep it safe for your records.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Your membership will be activated after payment verification at our office.", "", 1, "L", false, 0, "")

	// Footer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(18, 270)
	pdf.CellFormat(87, 5, "Generated on: "+now.In(ist).Format("02/01/2006, 3:04:05 pm"), "", 0, "L", false, 0, "")
	pdf.CellFormat(87, 5, "Indian Red Cross Society - Tripura State Branch", "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return &Receipt{Number: number, PDF: buf.Bytes()}, nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
