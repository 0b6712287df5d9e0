package i18n

import "time"

var catalog = map[Language]map[string]string{
	English: {
		"title":           "Roommate Expense Splitter",
		"addExpense":      "Add New Expense",
		"selectRoommate":  "Select Roommate",
		"amount":          "Amount",
		"description":     "Description",
		"addButton":       "Add Expense",
		"currentMonth":    "Current Month Expenses",
		"noExpenses":      "No expenses recorded for this month yet.",
		"previousMonths":  "Previous Months",
		"noArchived":      "No archived months yet.",
		"deleteConfirm":   "Are you sure you want to delete this expense?",
		"cannotUndo":      "This action cannot be undone.",
		"cancel":          "Cancel",
		"delete":          "Delete",
		"close":           "Close",
		"endMonth":        "End Month",
		"export":          "Export",
		"expenseDetails":  "Expense Details",
		"date":            "Date",
		"roommate":        "",
		"roommateColumn":  "Roommate",
		"settlement":      "Settlement Summary",
		"loading":         "Loading...",
		"owes":            "owes",
		"total":           "Total",
		"perPerson":       "Per Person",
		"expenseDeleted":  "Expense deleted successfully",
		"expenseAdded":    "Expense added successfully",
		"monthArchived":   "Month archived successfully",
		"errorLoading":    "Error loading data",
		"errorAdding":     "Error adding expense",
		"errorDeleting":   "Error deleting expense",
		"errorArchiving":  "Error archiving month",
		"tryAgain":        "Please try again later",
		"receipt":         "Receipt",
		"receiptUploaded": "Receipt uploaded",
		"receiptDeleted":  "Receipt deleted",
		"receiptNotImage": "Please upload an image file",
		"receiptTooLarge": "File size should be less than 5MB",
		"errorReceipt":    "Failed to upload receipt. Please try again.",
		"errorReceiptDel": "Failed to delete receipt. Please try again.",
		"nothingToExport": "Nothing to archive: the current month has no expenses.",
		"analytics":       "Expense Analytics",
		"monthlyTotals":   "Monthly Totals",
		"roommateStats":   "Roommate Statistics",
		"currentSpend":    "Current",
		"lifetimeTotal":   "Lifetime",
		"average":         "Monthly Average",
		"language":        "Language",
		"theme":           "Theme",
		"light":           "Light",
		"dark":            "Dark",
		"saved":           "Saved",
		"notFound":        "Expense not found",
		"invalidInput":    "Please check the entered values",
		"cancelled":       "Cancelled",
	},
	Turkish: {
		"title":           "Gider Paylaşımı",
		"addExpense":      "Yeni Gider Ekle",
		"selectRoommate":  "Kimsin",
		"amount":          "Tutar",
		"description":     "Açıklama",
		"addButton":       "Gider Ekle",
		"currentMonth":    "Bu Ayki Giderler",
		"noExpenses":      "Bu ay için henüz gider kaydı yok.",
		"previousMonths":  "Önceki Aylar",
		"noArchived":      "Henüz arşivlenmiş ay yok.",
		"deleteConfirm":   "Bu gideri silmek istediğinizden emin misiniz?",
		"cannotUndo":      "Bu işlem geri alınamaz.",
		"cancel":          "İptal",
		"delete":          "Sil",
		"close":           "Kapat",
		"endMonth":        "Ayı Bitir",
		"export":          "Dışa Aktar",
		"expenseDetails":  "Gider Detayları",
		"date":            "Tarih",
		"roommate":        "",
		"roommateColumn":  "Ev Arkadaşı",
		"settlement":      "Hesaplaşma Özeti",
		"loading":         "Yükleniyor...",
		"owes":            "->",
		"total":           "Toplam",
		"perPerson":       "Kişi Başı",
		"expenseDeleted":  "Gider başarıyla silindi",
		"expenseAdded":    "Gider başarıyla eklendi",
		"monthArchived":   "Ay başarıyla arşivlendi",
		"errorLoading":    "Veri yüklenirken hata oluştu",
		"errorAdding":     "Gider eklenirken hata oluştu",
		"errorDeleting":   "Gider silinirken hata oluştu",
		"errorArchiving":  "Ay arşivlenirken hata oluştu",
		"tryAgain":        "Lütfen daha sonra tekrar deneyin",
		"receipt":         "Fiş",
		"receiptUploaded": "Fiş yüklendi",
		"receiptDeleted":  "Fiş silindi",
		"receiptNotImage": "Lütfen bir resim dosyası yükleyin",
		"receiptTooLarge": "Dosya boyutu 5MB'den küçük olmalı",
		"errorReceipt":    "Fiş yüklenemedi. Lütfen tekrar deneyin.",
		"errorReceiptDel": "Fiş silinemedi. Lütfen tekrar deneyin.",
		"nothingToExport": "Arşivlenecek gider yok.",
		"analytics":       "Gider Analizi",
		"monthlyTotals":   "Aylık Toplamlar",
		"roommateStats":   "Kişi İstatistikleri",
		"currentSpend":    "Bu Ay",
		"lifetimeTotal":   "Toplam",
		"average":         "Aylık Ortalama",
		"language":        "Dil",
		"theme":           "Tema",
		"light":           "Açık",
		"dark":            "Koyu",
		"saved":           "Kaydedildi",
		"notFound":        "Gider bulunamadı",
		"invalidInput":    "Lütfen girilen değerleri kontrol edin",
		"cancelled":       "İptal edildi",
	},
}

var monthNames = map[Language][12]string{
	English: {
		time.January.String(), time.February.String(), time.March.String(),
		time.April.String(), time.May.String(), time.June.String(),
		time.July.String(), time.August.String(), time.September.String(),
		time.October.String(), time.November.String(), time.December.String(),
	},
	Turkish: {
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	},
}
