package utils

import (
	"fmt"
	"time"
)

// LastNDaysWindow calcula a janela de coleta dos últimos N dias. O fim da
// janela é o dia atual menos lagDays, acomodando fontes cujos dados chegam
// com atraso (o Search Console publica com 3 dias de defasagem, o Google Ads
// fecha o dia anterior).
func LastNDaysWindow(days, lagDays int) (time.Time, time.Time) {
	end := truncateToDay(time.Now()).AddDate(0, 0, -lagDays)
	start := end.AddDate(0, 0, -days)

	return start, end
}

// FormatDateRangeLabel monta o rótulo "<início>_<fim>" usado como chave das
// tabelas de quebra por dimensão
func FormatDateRangeLabel(start, end time.Time) string {
	return fmt.Sprintf("%s_%s", start.Format(time.DateOnly), end.Format(time.DateOnly))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
