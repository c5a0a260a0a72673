package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/smbworkshop/stagedef/stage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	provenanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0C0C0")).
			Italic(true)
)

func printReport(w io.Writer, path string, sd *stage.StageDef) {
	fmt.Fprintln(w, titleStyle.Render("Stagedef "+path))
	fmt.Fprintf(w, "%s %g / %g\n", labelStyle.Render("magic numbers:"), sd.MagicNumber1, sd.MagicNumber2)
	fmt.Fprintf(w, "%s %s rotation %s\n", labelStyle.Render("start:"), sd.StartPosition, sd.StartRotation)
	fmt.Fprintf(w, "%s %g\n", labelStyle.Render("fallout level:"), sd.FalloutLevel)

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("Global lists"))
	printCount(w, stage.KindGoal, len(sd.Goals))
	printCount(w, stage.KindBumper, len(sd.Bumpers))
	printCount(w, stage.KindJamabar, len(sd.Jamabars))
	printCount(w, stage.KindBanana, len(sd.Bananas))
	printCount(w, stage.KindConeCollision, len(sd.ConeCollisions))
	printCount(w, stage.KindSphereCollision, len(sd.SphereCollisions))
	printCount(w, stage.KindCylinderCollision, len(sd.CylinderCollisions))
	printCount(w, stage.KindFalloutVolume, len(sd.FalloutVolumes))
	printCount(w, stage.KindBackgroundModel, len(sd.BackgroundModels))

	for i, h := range sd.CollisionHeaders {
		fmt.Fprintln(w)
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("Collision header %d", i)))
		fmt.Fprintf(w, "  center of rotation %s, conveyor %s\n", h.CenterOfRotation, h.ConveyorVector)
		printLocal(w, stage.KindGoal, sd.Goals, h.Goals)
		printLocal(w, stage.KindBumper, sd.Bumpers, h.Bumpers)
		printLocal(w, stage.KindJamabar, sd.Jamabars, h.Jamabars)
		printLocal(w, stage.KindBanana, sd.Bananas, h.Bananas)
		printLocal(w, stage.KindConeCollision, sd.ConeCollisions, h.ConeCollisions)
		printLocal(w, stage.KindSphereCollision, sd.SphereCollisions, h.SphereCollisions)
		printLocal(w, stage.KindCylinderCollision, sd.CylinderCollisions, h.CylinderCollisions)
		printLocal(w, stage.KindFalloutVolume, sd.FalloutVolumes, h.FalloutVolumes)
	}
}

func printCount(w io.Writer, kind stage.Kind, n int) {
	if n == 0 {
		return
	}
	fmt.Fprintf(w, "  %-20s %s\n", kind, countStyle.Render(fmt.Sprintf("%d", n)))
}

func printLocal[T any](w io.Writer, kind stage.Kind, global, local []stage.Ref[T]) {
	if len(local) == 0 {
		return
	}
	shared := sharedCount(global, local)
	var prov string
	switch {
	case shared == len(local):
		prov = "shared with global list"
	case shared == 0:
		prov = "embedded"
	default:
		prov = fmt.Sprintf("%d shared, %d embedded", shared, len(local)-shared)
	}
	fmt.Fprintf(w, "  %-20s %s %s\n", kind,
		countStyle.Render(fmt.Sprintf("%d", len(local))),
		provenanceStyle.Render("("+prov+")"))
}

// sharedCount reports how many local refs are identity-equal to some
// global ref.
func sharedCount[T any](global, local []stage.Ref[T]) int {
	n := 0
	for _, l := range local {
		for _, g := range global {
			if l.Same(g) {
				n++
				break
			}
		}
	}
	return n
}
