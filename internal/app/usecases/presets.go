package usecases

import (
	"fmt"

	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

// Preset selects the prompt template. Unknown modes map to PresetFree.
type Preset int

const (
	PresetFree Preset = iota
	PresetBundleOffer
)

func ParsePreset(mode string) Preset {
	switch mode {
	case "bundleOffer":
		return PresetBundleOffer
	default:
		return PresetFree
	}
}

func (p Preset) String() string {
	if p == PresetBundleOffer {
		return "bundleOffer"
	}
	return "free"
}

const BrandSystem = `
You are the ecommerce assistant for TheGrantedSolutions.com (tech gadgets & gifts).
Tone: clear, punchy, conversion-focused. Avoid fluff. 1–2 lines max by default.
Return only the answer text (no preambles).
`

type catalogEntry struct {
	Name string
	URL  string
}

var (
	printerC80 = catalogEntry{
		Name: "Portable Inkless A4 C80 Printer",
		URL:  "https://thegrantedsolutions.com/products/portable-inkless-thermal-a4-c80-printer-300dpi",
	}
	a4Paper = catalogEntry{
		Name: "A4 Thermal Printer Paper – 20 Rolls (210×30mm)",
		URL:  "https://thegrantedsolutions.com/products/a4-thermal-printer-paper-20-rolls-210x30mm",
	}
)

const defaultBundleRequest = "Create a bundle offer for these two products."

const bundleTask = `
Task: Create a concise bundle/upsell pitch (max 2 lines).
- Return HTML with two <a> links:
  • %s -> %s
  • %s -> %s
- Line 1: Benefit-led reason (inkless convenience, never run out, crisp 300DPI).
- Line 2: Clear CTA including both links (“Shop the set”).
- Keep it punchy. No emojis.
`

// Compose builds the role-tagged messages sent to the chat backend.
func Compose(preset Preset, message string, product model.ProductOverrides) []model.ChatMessage {
	switch preset {
	case PresetBundleOffer:
		return composeBundleOffer(message, product)
	default:
		return []model.ChatMessage{
			{Role: "system", Content: BrandSystem},
			{Role: "user", Content: message},
		}
	}
}

func composeBundleOffer(message string, product model.ProductOverrides) []model.ChatMessage {
	printerName := orDefault(product.PrinterName, printerC80.Name)
	paperName := orDefault(product.PaperName, a4Paper.Name)
	printerURL := orDefault(product.PrinterURL, printerC80.URL)
	paperURL := orDefault(product.PaperURL, a4Paper.URL)

	system := BrandSystem + fmt.Sprintf(bundleTask, printerName, printerURL, paperName, paperURL)
	return []model.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: orDefault(message, defaultBundleRequest)},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
