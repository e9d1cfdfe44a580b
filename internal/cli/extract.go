// Package cli provides the command-line interface for Pigment.
package cli

import (
	"encoding/json"
	"fmt"
	stdimage "image"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jmylchreest/pigment/internal/colour"
	"github.com/jmylchreest/pigment/internal/image"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Extract command flags
	extractColours      int
	extractFormat       string
	extractOutput       string
	extractSort         string
	extractRegion       string
	extractResizeArea   int
	extractMaxDimension int
	extractFallback     string
	extractShowPreview  bool
	extractNoCache      bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image or image URL.

The extract command quantises the image down to its most prominent
colours, then scores them against the built-in profiles (Vibrant,
Muted, and their light and dark variants). You can control the number
of colours, restrict extraction to a region, and choose the output
format.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Extract up to 16 colours (default) from an image
  pigment extract wallpaper.jpg

  # Extract from a URL with colour previews
  pigment extract --preview https://example.com/photo.png

  # Extract 8 colours and output as JSON
  pigment extract -c 8 --format json wallpaper.jpg

  # Only consider the top-left quarter of a 1920x1080 image
  pigment extract --region 0,0,960,540 wallpaper.jpg

  # Sort swatches by hue and save to a file
  pigment extract --sort hue --output palette.txt wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", colour.DefaultMaxColors, "maximum number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().StringVar(&extractSort, "sort", "population", "swatch order (population, hue)")
	extractCmd.Flags().StringVar(&extractRegion, "region", "", "restrict extraction to a region (x0,y0,x1,y1)")
	extractCmd.Flags().IntVar(&extractResizeArea, "resize-area", colour.DefaultResizeArea, "downscale images above this pixel area (0 to disable)")
	extractCmd.Flags().IntVar(&extractMaxDimension, "max-dimension", 0, "downscale images above this width or height (alternative to --resize-area)")
	extractCmd.Flags().StringVar(&extractFallback, "fallback", "", "fallback colour for unfilled profiles, e.g. #202020")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal (default: on for TTYs)")
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "fetch image URLs directly instead of using the on-disk cache")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	imagePath := args[0]

	if extractColours < 1 || extractColours > 256 {
		return fmt.Errorf("invalid colour count: %d (must be 1-256)", extractColours)
	}

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	// Previews default to on when stdout is a terminal and off when
	// piped, unless the flag was given explicitly.
	if !cmd.Flags().Changed("preview") {
		extractShowPreview = extractOutput == "" && term.IsTerminal(int(os.Stdout.Fd()))
	}

	fallback := colour.Black
	if extractFallback != "" {
		parsed, err := parseColour(extractFallback)
		if err != nil {
			return fmt.Errorf("invalid fallback colour: %w", err)
		}
		fallback = parsed
	}

	cfg := colour.DefaultConfig()
	cfg.MaxColors = extractColours
	cfg.ResizeArea = extractResizeArea
	cfg.ResizeMaxDimension = extractMaxDimension
	if extractMaxDimension > 0 && !cmd.Flags().Changed("resize-area") {
		cfg.ResizeArea = 0
	}

	if extractRegion != "" {
		region, err := parseRegion(extractRegion)
		if err != nil {
			return fmt.Errorf("invalid region: %w", err)
		}
		cfg.Region = region
	}

	start := time.Now()
	loader := image.NewSmartLoader()
	loader.DisableCache = extractNoCache
	img, err := loader.Load(cmd.Context(), imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "path", imagePath,
		"width", bounds.Dx(), "height", bounds.Dy(), "duration", time.Since(start))

	start = time.Now()
	palette, err := colour.FromImage(img, cfg)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("palette extracted",
		"swatches", len(palette.Swatches()), "duration", time.Since(start))

	output, err := formatPalette(palette, extractFormat, extractSort, fallback, extractShowPreview)
	if err != nil {
		return err
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("palette written", "path", extractOutput)
	} else {
		fmt.Print(output)
	}

	return nil
}

// parseColour parses a colour given as #rrggbb, rrggbb, or #rgb.
func parseColour(s string) (colour.ARGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return colour.NewRGB(r, g, b), nil
}

// parseRegion parses a region given as x0,y0,x1,y1.
func parseRegion(s string) (stdimage.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return stdimage.Rectangle{}, fmt.Errorf("expected x0,y0,x1,y1, got %q", s)
	}

	coords := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return stdimage.Rectangle{}, fmt.Errorf("bad coordinate %q: %w", part, err)
		}
		coords[i] = v
	}

	region := stdimage.Rect(coords[0], coords[1], coords[2], coords[3])
	if region.Empty() {
		return stdimage.Rectangle{}, fmt.Errorf("region %v is empty", region)
	}
	return region, nil
}

// sortSwatches orders swatches for output: by population (descending)
// or by hue (ascending, via go-colorful's HSV).
func sortSwatches(swatches []*colour.Swatch, order string) error {
	switch order {
	case "population", "":
		sort.SliceStable(swatches, func(i, j int) bool {
			return swatches[i].Population() > swatches[j].Population()
		})
	case "hue":
		sort.SliceStable(swatches, func(i, j int) bool {
			hi, _, _ := colorfulFromARGB(swatches[i].Color()).Hsv()
			hj, _, _ := colorfulFromARGB(swatches[j].Color()).Hsv()
			return hi < hj
		})
	default:
		return fmt.Errorf("unsupported sort order: %s (supported: population, hue)", order)
	}
	return nil
}

func colorfulFromARGB(c colour.ARGB) colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format, order string, fallback colour.ARGB, showPreview bool) (string, error) {
	swatches := palette.Swatches()
	if err := sortSwatches(swatches, order); err != nil {
		return "", err
	}

	switch format {
	case "hex":
		return formatText(palette, swatches, showPreview, func(c colour.ARGB) string {
			return c.Hex()
		}), nil
	case "rgb":
		return formatText(palette, swatches, showPreview, func(c colour.ARGB) string {
			return fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())
		}), nil
	case "json":
		return formatJSON(palette, swatches, fallback)
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatText renders the profile section followed by the swatch list.
func formatText(palette *colour.Palette, swatches []*colour.Swatch, showPreview bool, render func(colour.ARGB) string) string {
	var sb strings.Builder

	for _, target := range palette.Targets() {
		sw := palette.SwatchForTarget(target)
		if sw == nil {
			continue
		}
		if showPreview {
			sb.WriteString(colour.FormatColourWithLabel(sw.Color(), target.Name, 4))
		} else {
			sb.WriteString(fmt.Sprintf("%-20s %s", target.Name, render(sw.Color())))
		}
		sb.WriteByte('\n')
	}
	if dominant := palette.DominantSwatch(); dominant != nil {
		if showPreview {
			sb.WriteString(colour.FormatColourWithLabel(dominant.Color(), "Dominant", 4))
		} else {
			sb.WriteString(fmt.Sprintf("%-20s %s", "Dominant", render(dominant.Color())))
		}
		sb.WriteByte('\n')
	}

	if sb.Len() > 0 && len(swatches) > 0 {
		sb.WriteByte('\n')
	}
	for _, sw := range swatches {
		if showPreview {
			sb.WriteString(fmt.Sprintf("%s %s (%d)", colour.ColourPreview(sw.Color(), 4), render(sw.Color()), sw.Population()))
		} else {
			sb.WriteString(fmt.Sprintf("%s (%d)", render(sw.Color()), sw.Population()))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// swatchJSON is the JSON shape for a single swatch.
type swatchJSON struct {
	Colour     string `json:"colour"`
	Population int    `json:"population"`
	TitleText  string `json:"title_text"`
	BodyText   string `json:"body_text"`
}

// paletteJSON is the JSON shape for the whole palette.
type paletteJSON struct {
	Profiles map[string]string `json:"profiles"`
	Dominant string            `json:"dominant,omitempty"`
	Swatches []swatchJSON      `json:"swatches"`
}

// formatJSON renders the palette as JSON. Profiles that matched no
// swatch report the fallback colour.
func formatJSON(palette *colour.Palette, swatches []*colour.Swatch, fallback colour.ARGB) (string, error) {
	out := paletteJSON{
		Profiles: make(map[string]string, len(palette.Targets())),
		Swatches: make([]swatchJSON, 0, len(swatches)),
	}

	for _, target := range palette.Targets() {
		out.Profiles[target.Name] = palette.ColorForTarget(target, fallback).Hex()
	}
	if dominant := palette.DominantSwatch(); dominant != nil {
		out.Dominant = dominant.Color().Hex()
	}

	for _, sw := range swatches {
		out.Swatches = append(out.Swatches, swatchJSON{
			Colour:     sw.Color().Hex(),
			Population: sw.Population(),
			TitleText:  sw.TitleTextColor().HexAlpha(),
			BodyText:   sw.BodyTextColor().HexAlpha(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
