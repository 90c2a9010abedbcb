package v1

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// RunGUI starts the local desktop GUI for driving a test plan. Each suite
// gets a row with a Run button and a status label; the footer shows the
// overall run verdict.
func RunGUI(p *Plan, r *Runner) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Unit Test Suites")

	verdictLabel := widget.NewLabel("Run verdict: no failures yet")

	var suiteControls []fyne.CanvasObject

	// Header
	suiteControls = append(suiteControls, widget.NewLabelWithStyle("Unit Test Suites", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))

	for _, suite := range p.Suites {
		suiteName := suite.Name // Capture variable

		statusLabel := widget.NewLabel("Not Run")
		statusLabel.TextStyle = fyne.TextStyle{Italic: true}

		runBtn := widget.NewButton("Run", func() {
			statusLabel.SetText("Running...")
			// Run in a separate goroutine to avoid blocking the UI
			go func() {
				err := p.RunSuiteByName(r, suiteName)
				if err != nil {
					statusLabel.SetText(fmt.Sprintf("FAILED: %v", err))
				} else {
					statusLabel.SetText("PASSED")
				}
				if r.Succeeded() {
					verdictLabel.SetText("Run verdict: no failures yet")
				} else {
					verdictLabel.SetText("Run verdict: FAILED")
				}
			}()
		})

		// Layout for each row: Name [Spacer] Status [Button]
		row := container.NewHBox(
			widget.NewLabel(suiteName),
			layout.NewSpacer(),
			statusLabel,
			runBtn,
		)
		suiteControls = append(suiteControls, row)
	}

	suiteControls = append(suiteControls, verdictLabel)

	// Create a vertical box with all suite rows
	content := container.NewVBox(suiteControls...)

	// Wrap in a scroll container in case there are many suites
	scroll := container.NewScroll(content)

	myWindow.SetContent(scroll)
	myWindow.Resize(fyne.NewSize(600, 400))

	log.Println("Starting GUI window...")
	myWindow.ShowAndRun()
}
