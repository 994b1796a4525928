// Package cmd - slider command
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enterprise-quote/core/input"
	"enterprise-quote/core/output"
	"enterprise-quote/core/slider"
	"enterprise-quote/core/ui"
	qerrors "enterprise-quote/internal/errors"
	"enterprise-quote/internal/logging"
)

var (
	sliderBook   bookFlags
	sliderVolume string
	sliderBands  bool
)

// sliderCmd shows how slider positions map onto volumes
var sliderCmd = &cobra.Command{
	Use:   "slider [position]",
	Short: "Map a slider position to a volume, or a volume to a position",
	Long: `The volume slider gives every tier an equal share of its 0-100 range,
so low tiers get fine steps and high tiers coarse ones.

Examples:
  enterprise-quote slider 35
  enterprise-quote slider --volume 1,000,000
  enterprise-quote slider --bands`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSlider,
}

func init() {
	sliderBook.register(sliderCmd)
	sliderCmd.Flags().StringVar(&sliderVolume, "volume", "", "map this volume to a position instead")
	sliderCmd.Flags().BoolVar(&sliderBands, "bands", false, "list the band of each tier")
}

func runSlider(cmd *cobra.Command, args []string) error {
	book, err := sliderBook.load()
	if err != nil {
		return err
	}
	m, err := slider.NewMapper(book.Tiers)
	if err != nil {
		return err
	}

	var (
		pos    float64
		volume int64
		tier   int
	)
	switch {
	case sliderVolume != "":
		volume, err = input.ParseVolume(sliderVolume)
		if err != nil {
			return err
		}
		var clamped bool
		if volume, clamped = input.ClampVolume(volume, book.MaxVolume()); clamped {
			logging.Warn("Volume clamped to the price book range",
				zap.String("volume", sliderVolume),
				zap.Int64("clamped", volume))
		}
		pos = m.VolumeToPosition(volume)
		tier = book.Tiers.Find(volume)
	default:
		if len(args) > 0 {
			pos, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				return qerrors.Parsing("slider position "+strconv.Quote(args[0]), err)
			}
		}
		pos = slider.ClampPosition(pos)
		volume = m.PositionToVolume(pos)
		tier = m.TierAt(pos)
	}

	w := ui.NewWriter(cmd.OutOrStdout(), colorless())
	w.Header("Slider · " + book.Name)

	bar := w.NewSliderBar(output.SliderWidth)
	bar.Position = pos
	bar.Labels = output.SliderLabels(m)
	bar.Render()
	w.Println("")

	w.Println("Position:   %.2f", pos)
	w.Println("Volume:     %s", output.Volume(volume))
	w.Println("Tier:       %s", book.Tiers[tier].Label)
	w.Println("Step:       %s per position unit", output.Volume(m.Resolution(volume)))

	if sliderBands {
		w.Println("")
		w.SubHeader("Bands")
		tbl := w.NewTable("Tier", "From", "To", "Volume").AlignRight(1, 2)
		for _, b := range m.Bands() {
			tbl.AddRow(b.Tier.Label, fmt.Sprintf("%.2f", b.Start), fmt.Sprintf("%.2f", b.End), output.VolumeRange(b.Tier))
		}
		tbl.Render()
	}
	return nil
}
