package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gasupport/internal/reports"
)

// CreateReport walks through the report form: job, place (+number), notes,
// schedule, then attachment and picture paths, which are read from disk
// into embedded data URLs before the record is persisted.
func (a *App) CreateReport(ctx context.Context) error {
	job, err := getSimpleText(a.reader, "Job name", os.Stdout)
	if err != nil {
		return err
	}

	place, err := GetChoice(a.reader, "Place:", reports.Places, os.Stdout)
	if err != nil {
		return err
	}
	placeNumber, err := getSimpleText(a.reader, fmt.Sprintf("%s number (optional)", place), os.Stdout)
	if err != nil {
		return err
	}

	notes, err := GetMultiline(a.reader, "Notes", os.Stdout)
	if err != nil {
		return err
	}

	schedule, err := GetChoice(a.reader, "Schedule:", reports.Schedules, os.Stdout)
	if err != nil {
		return err
	}

	attachmentPaths, err := GetLines(a.reader, "Attachment file paths", os.Stdout)
	if err != nil {
		return err
	}
	attachments, err := reports.IngestFiles(ctx, attachmentPaths)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	picturePaths, err := GetLines(a.reader, "Picture file paths", os.Stdout)
	if err != nil {
		return err
	}
	pictures, err := reports.IngestPictures(ctx, picturePaths)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	rep, err := a.reports.Create(ctx, reports.Params{
		Job:         job,
		Place:       place,
		PlaceNumber: placeNumber,
		Notes:       notes,
		Schedule:    schedule,
		Attachments: attachments,
		Pictures:    pictures,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Report created (%s).", rep.ID))
	return nil
}

// ListReports prints every stored report, newest first.
func (a *App) ListReports(ctx context.Context) error {
	list, err := a.reports.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No reports created yet.")
		return nil
	}
	for _, r := range list {
		place := r.Place
		if r.PlaceNumber != "" {
			place += " " + r.PlaceNumber
		}
		printlnFn(fmt.Sprintf("%s  %s  %s  [%s]  %s  (%d attachments, %d pictures)",
			r.ID, r.Timestamp.Local().Format("2006-01-02 15:04"), r.Job, r.Schedule, place,
			len(r.Attachments), len(r.Pictures)))
		if r.Notes != "" {
			printlnFn("    notes:", r.Notes)
		}
	}
	return nil
}

// DeleteReport removes one report by id.
func (a *App) DeleteReport(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter report id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.reports.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Deleted.")
	return nil
}
