package analytics

import "github.com/fin-tools/finsight/pkg/models/domain"

// Recommend produces the legacy flat list of advice strings. Guards are
// evaluated independently in declaration order; when none fires a single
// stability message is returned, so the result is never empty.
func Recommend(summary domain.Summary) []string {
	income := summary.MonthlyIncome
	expenses := summary.MonthlyExpenses

	var recs []string

	if income > 0 && expenses > 0 && expenses > 0.7*income {
		recs = append(recs, "Pengeluaran >70% pendapatan. Kurangi biaya hiburan 10-20% bulan ini.")
	}
	if summary.EmergencyFund < 3*expenses {
		recs = append(recs, "Tambahkan dana darurat hingga minimal 3x pengeluaran bulanan.")
	}
	if income-expenses > 0 {
		recs = append(recs, "Alokasikan 10% dari sisa pendapatan untuk investasi jangka panjang.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Kondisi stabil. Pertahankan kebiasaan baik dan evaluasi target keuangan.")
	}
	return recs
}
