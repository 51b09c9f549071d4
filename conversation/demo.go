package conversation

// demoData is the sample applicant used by FillDemo. Languages without
// their own dataset fall back to the German one.
var demoData = map[string]map[string]string{
	"de": {
		"fullName":           "Max Mustermann",
		"dateOfBirth":        "1990-05-15",
		"nationality":        "TR",
		"passportNumber":     "TR123456789",
		"currentAddress":     "Atatürk Caddesi 123, 34000 Istanbul, Türkei",
		"phoneNumber":        "+90 532 123 4567",
		"email":              "max.mustermann@example.com",
		"maritalStatus":      "verheiratet",
		"germanAddress":      "Hauptstraße 42, 10115 Berlin",
		"plannedArrival":     "2024-03-01",
		"employerName":       "Tech Solutions GmbH",
		"employerAddress":    "Innovationsweg 10, 80331 München",
		"jobTitle":           "Senior Software Entwickler",
		"jobDescription":     "Entwicklung von Cloud-basierten Anwendungen mit Fokus auf Microservices-Architektur. Verantwortlich für die technische Leitung eines 5-köpfigen Teams und die Implementierung von CI/CD-Pipelines.",
		"contractDuration":   "Unbefristet",
		"salary":             "5500",
		"workHours":          "40",
		"previousEmployment": "Software Entwickler bei Digital Corp (2018-2024), Junior Entwickler bei StartUp AG (2015-2018)",
		"qualifications":     "Master in Informatik (TU Istanbul, 2015), Bachelor in Informatik (Bogazici Universität, 2013), AWS Certified Solutions Architect, Scrum Master Zertifizierung",
		"germanLevel":        "B2",
		"criminalRecord":     "nein",
		"healthInsurance":    "Techniker Krankenkasse (TK) - Arbeitgeber übernimmt 50%",
		"accommodation":      "Möblierte 2-Zimmer Wohnung in Berlin-Mitte, bereits gemietet",
		"financialSupport":   "Eigenes Einkommen durch Arbeitsvertrag, Ersparnisse von 15.000 EUR",
	},
	"en": {
		"fullName":           "John Smith",
		"dateOfBirth":        "1990-05-15",
		"nationality":        "TR",
		"passportNumber":     "TR123456789",
		"currentAddress":     "Atatürk Street 123, 34000 Istanbul, Turkey",
		"phoneNumber":        "+90 532 123 4567",
		"email":              "john.smith@example.com",
		"maritalStatus":      "married",
		"germanAddress":      "Main Street 42, 10115 Berlin",
		"plannedArrival":     "2024-03-01",
		"employerName":       "Tech Solutions GmbH",
		"employerAddress":    "Innovation Way 10, 80331 Munich",
		"jobTitle":           "Senior Software Engineer",
		"jobDescription":     "Development of cloud-based applications with focus on microservices architecture. Responsible for technical leadership of a 5-person team and implementation of CI/CD pipelines.",
		"contractDuration":   "Permanent",
		"salary":             "5500",
		"workHours":          "40",
		"previousEmployment": "Software Engineer at Digital Corp (2018-2024), Junior Developer at StartUp Inc (2015-2018)",
		"qualifications":     "Master in Computer Science (TU Istanbul, 2015), Bachelor in Computer Science (Bogazici University, 2013), AWS Certified Solutions Architect, Scrum Master Certification",
		"germanLevel":        "B2",
		"criminalRecord":     "no",
		"healthInsurance":    "Techniker Krankenkasse (TK) - Employer covers 50%",
		"accommodation":      "Furnished 2-room apartment in Berlin-Mitte, already rented",
		"financialSupport":   "Own income through employment contract, savings of 15,000 EUR",
	},
	"tr": {
		"fullName":           "Mehmet Yılmaz",
		"dateOfBirth":        "1990-05-15",
		"nationality":        "TR",
		"passportNumber":     "TR123456789",
		"currentAddress":     "Atatürk Caddesi 123, 34000 İstanbul, Türkiye",
		"phoneNumber":        "+90 532 123 4567",
		"email":              "mehmet.yilmaz@example.com",
		"maritalStatus":      "evli",
		"germanAddress":      "Hauptstraße 42, 10115 Berlin",
		"plannedArrival":     "2024-03-01",
		"employerName":       "Tech Solutions GmbH",
		"employerAddress":    "Innovationsweg 10, 80331 Münih",
		"jobTitle":           "Kıdemli Yazılım Mühendisi",
		"jobDescription":     "Mikroservis mimarisine odaklanan bulut tabanlı uygulamaların geliştirilmesi. 5 kişilik ekibin teknik liderliği ve CI/CD hatlarının uygulanmasından sorumlu.",
		"contractDuration":   "Süresiz",
		"salary":             "5500",
		"workHours":          "40",
		"previousEmployment": "Digital Corp'ta Yazılım Mühendisi (2018-2024), StartUp AG'de Junior Geliştirici (2015-2018)",
		"qualifications":     "Bilgisayar Bilimleri Yüksek Lisansı (İstanbul Teknik Üniversitesi, 2015), Bilgisayar Bilimleri Lisansı (Boğaziçi Üniversitesi, 2013), AWS Certified Solutions Architect, Scrum Master Sertifikası",
		"germanLevel":        "B2",
		"criminalRecord":     "hayır",
		"healthInsurance":    "Techniker Krankenkasse (TK) - İşveren %50 karşılıyor",
		"accommodation":      "Berlin-Mitte'de mobilyalı 2 odalı daire, kiralandı",
		"financialSupport":   "İş sözleşmesi ile kendi geliri, 15.000 EUR birikim",
	},
}

func demoDataFor(language string) map[string]string {
	if d, ok := demoData[language]; ok {
		return d
	}
	return demoData["de"]
}
