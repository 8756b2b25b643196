package ui

import "github.com/AlecAivazis/survey/v2"

// AskOptions returns the survey options shared by every prompt, with the
// question icon set to "-", followed by extra.
func AskOptions(extra ...survey.AskOpt) []survey.AskOpt {
	opts := []survey.AskOpt{
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = "-"
		}),
	}
	return append(opts, extra...)
}
