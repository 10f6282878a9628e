package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/silence-align/internal/processor"
)

func renderAlignReport(report *processor.AlignReport) string {
	rows := [][]string{
		{"Audio events", fmt.Sprintf("%d", report.Events)},
		{"Silence segments", fmt.Sprintf("%d", report.Silences)},
	}
	if report.Subtitles > 0 {
		rows = append(rows,
			[]string{"Subtitle segments", fmt.Sprintf("%d", report.Subtitles)},
			[]string{"Starts adjusted", fmt.Sprintf("%d", report.AdjustedStarts)},
			[]string{"Ends adjusted", fmt.Sprintf("%d", report.AdjustedEnds)},
			[]string{"Orphan regions", fmt.Sprintf("%d", report.Orphans)},
		)
	}
	if report.NonSpeechClips > 0 {
		rows = append(rows,
			[]string{"Non-speech clips", fmt.Sprintf("%d", report.NonSpeechClips)},
			[]string{"Non-speech SRT", report.NonSpeechSRT},
		)
	}
	rows = append(rows, []string{"Output", report.OutputPath})

	return renderTable([]string{"Result", "Value"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
