package locale

// fieldLabels carries the display label of every form field in the eight
// fully localized languages. German is the fallback.
var fieldLabels = map[string]map[string]string{
	"fullName": {
		"de": "Vollständiger Name",
		"en": "Full Name",
		"tr": "Tam Ad",
		"ar": "الاسم الكامل",
		"pl": "Pełne imię i nazwisko",
		"uk": "Повне ім'я",
		"es": "Nombre completo",
		"fr": "Nom complet",
	},
	"dateOfBirth": {
		"de": "Geburtsdatum",
		"en": "Date of Birth",
		"tr": "Doğum Tarihi",
		"ar": "تاريخ الميلاد",
		"pl": "Data urodzenia",
		"uk": "Дата народження",
		"es": "Fecha de nacimiento",
		"fr": "Date de naissance",
	},
	"nationality": {
		"de": "Staatsangehörigkeit",
		"en": "Nationality",
		"tr": "Uyruk",
		"ar": "الجنسية",
		"pl": "Narodowość",
		"uk": "Громадянство",
		"es": "Nacionalidad",
		"fr": "Nationalité",
	},
	"passportNumber": {
		"de": "Reisepassnummer",
		"en": "Passport Number",
		"tr": "Pasaport Numarası",
		"ar": "رقم جواز السفر",
		"pl": "Numer paszportu",
		"uk": "Номер паспорта",
		"es": "Número de pasaporte",
		"fr": "Numéro de passeport",
	},
	"currentAddress": {
		"de": "Aktuelle Adresse",
		"en": "Current Address",
		"tr": "Mevcut Adres",
		"ar": "العنوان الحالي",
		"pl": "Obecny adres",
		"uk": "Поточна адреса",
		"es": "Dirección actual",
		"fr": "Adresse actuelle",
	},
	"phoneNumber": {
		"de": "Telefonnummer",
		"en": "Phone Number",
		"tr": "Telefon Numarası",
		"ar": "رقم الهاتف",
		"pl": "Numer telefonu",
		"uk": "Номер телефону",
		"es": "Número de teléfono",
		"fr": "Numéro de téléphone",
	},
	"email": {
		"de": "E-Mail",
		"en": "Email",
		"tr": "E-posta",
		"ar": "البريد الإلكتروني",
		"pl": "E-mail",
		"uk": "Електронна пошта",
		"es": "Correo electrónico",
		"fr": "Courriel",
	},
	"maritalStatus": {
		"de": "Familienstand",
		"en": "Marital Status",
		"tr": "Medeni Durum",
		"ar": "الحالة الاجتماعية",
		"pl": "Stan cywilny",
		"uk": "Сімейний стан",
		"es": "Estado civil",
		"fr": "État civil",
	},
	"germanAddress": {
		"de": "Adresse in Deutschland",
		"en": "Address in Germany",
		"tr": "Almanya'daki Adres",
		"ar": "العنوان في ألمانيا",
		"pl": "Adres w Niemczech",
		"uk": "Адреса в Німеччині",
		"es": "Dirección en Alemania",
		"fr": "Adresse en Allemagne",
	},
	"plannedArrival": {
		"de": "Geplante Ankunft",
		"en": "Planned Arrival",
		"tr": "Planlanan Varış",
		"ar": "الوصول المخطط",
		"pl": "Planowany przyjazd",
		"uk": "Запланований приїзд",
		"es": "Llegada prevista",
		"fr": "Arrivée prévue",
	},
	"employerName": {
		"de": "Arbeitgeber",
		"en": "Employer",
		"tr": "İşveren",
		"ar": "صاحب العمل",
		"pl": "Pracodawca",
		"uk": "Роботодавець",
		"es": "Empleador",
		"fr": "Employeur",
	},
	"employerAddress": {
		"de": "Arbeitgeber Adresse",
		"en": "Employer Address",
		"tr": "İşveren Adresi",
		"ar": "عنوان صاحب العمل",
		"pl": "Adres pracodawcy",
		"uk": "Адреса роботодавця",
		"es": "Dirección del empleador",
		"fr": "Adresse de l'employeur",
	},
	"jobTitle": {
		"de": "Position",
		"en": "Position",
		"tr": "Pozisyon",
		"ar": "المنصب",
		"pl": "Stanowisko",
		"uk": "Посада",
		"es": "Puesto",
		"fr": "Poste",
	},
	"jobDescription": {
		"de": "Tätigkeitsbeschreibung",
		"en": "Job Description",
		"tr": "İş Tanımı",
		"ar": "وصف الوظيفة",
		"pl": "Opis stanowiska",
		"uk": "Опис роботи",
		"es": "Descripción del trabajo",
		"fr": "Description du poste",
	},
	"contractDuration": {
		"de": "Vertragsdauer",
		"en": "Contract Duration",
		"tr": "Sözleşme Süresi",
		"ar": "مدة العقد",
		"pl": "Czas trwania umowy",
		"uk": "Тривалість контракту",
		"es": "Duración del contrato",
		"fr": "Durée du contrat",
	},
	"salary": {
		"de": "Monatsgehalt (EUR)",
		"en": "Monthly Salary (EUR)",
		"tr": "Aylık Maaş (EUR)",
		"ar": "الراتب الشهري (يورو)",
		"pl": "Wynagrodzenie miesięczne (EUR)",
		"uk": "Місячна зарплата (EUR)",
		"es": "Salario mensual (EUR)",
		"fr": "Salaire mensuel (EUR)",
	},
	"workHours": {
		"de": "Arbeitsstunden/Woche",
		"en": "Work Hours/Week",
		"tr": "Çalışma Saatleri/Hafta",
		"ar": "ساعات العمل/الأسبوع",
		"pl": "Godziny pracy/tydzień",
		"uk": "Робочі години/тиждень",
		"es": "Horas de trabajo/semana",
		"fr": "Heures de travail/semaine",
	},
	"previousEmployment": {
		"de": "Berufserfahrung",
		"en": "Work Experience",
		"tr": "İş Deneyimi",
		"ar": "الخبرة المهنية",
		"pl": "Doświadczenie zawodowe",
		"uk": "Досвід роботи",
		"es": "Experiencia laboral",
		"fr": "Expérience professionnelle",
	},
	"qualifications": {
		"de": "Qualifikationen",
		"en": "Qualifications",
		"tr": "Nitelikler",
		"ar": "المؤهلات",
		"pl": "Kwalifikacje",
		"uk": "Кваліфікації",
		"es": "Cualificaciones",
		"fr": "Qualifications",
	},
	"germanLevel": {
		"de": "Deutschkenntnisse",
		"en": "German Language Skills",
		"tr": "Almanca Dil Becerileri",
		"ar": "مهارات اللغة الألمانية",
		"pl": "Znajomość języka niemieckiego",
		"uk": "Знання німецької мови",
		"es": "Conocimientos de alemán",
		"fr": "Compétences en allemand",
	},
	"criminalRecord": {
		"de": "Vorstrafen",
		"en": "Criminal Record",
		"tr": "Sabıka Kaydı",
		"ar": "السجل الجنائي",
		"pl": "Karalność",
		"uk": "Судимість",
		"es": "Antecedentes penales",
		"fr": "Casier judiciaire",
	},
	"healthInsurance": {
		"de": "Krankenversicherung",
		"en": "Health Insurance",
		"tr": "Sağlık Sigortası",
		"ar": "التأمين الصحي",
		"pl": "Ubezpieczenie zdrowotne",
		"uk": "Медичне страхування",
		"es": "Seguro de salud",
		"fr": "Assurance maladie",
	},
	"accommodation": {
		"de": "Unterkunft",
		"en": "Accommodation",
		"tr": "Konaklama",
		"ar": "السكن",
		"pl": "Zakwaterowanie",
		"uk": "Житло",
		"es": "Alojamiento",
		"fr": "Logement",
	},
	"financialSupport": {
		"de": "Finanzierung",
		"en": "Financial Support",
		"tr": "Mali Destek",
		"ar": "الدعم المالي",
		"pl": "Wsparcie finansowe",
		"uk": "Фінансова підтримка",
		"es": "Apoyo financiero",
		"fr": "Soutien financier",
	},
}

// FieldLabel returns the localized display label of a field, falling back
// to German and finally to the field id itself for unknown fields.
func FieldLabel(fieldID, lang string) string {
	labels, ok := fieldLabels[fieldID]
	if !ok {
		return fieldID
	}
	if s, ok := labels[lang]; ok {
		return s
	}
	return labels[Fallback]
}
