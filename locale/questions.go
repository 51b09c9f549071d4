package locale

// questionBank is the offline question text per field, used when no model
// is reachable or as the tail of the generator fallback chain.
var questionBank = map[string]map[string]string{
	"fullName": {
		"de": "Wie lautet Ihr vollständiger Name (wie im Reisepass)?",
		"en": "What is your full name (as in passport)?",
		"tr": "Tam adınız nedir (pasaporttaki gibi)?",
		"ar": "ما هو اسمك الكامل (كما في جواز السفر)؟",
		"pl": "Jakie jest Twoje pełne imię i nazwisko (jak w paszporcie)?",
		"uk": "Яке ваше повне ім'я (як у паспорті)?",
		"es": "¿Cuál es su nombre completo (como en el pasaporte)?",
		"fr": "Quel est votre nom complet (comme dans le passeport)?",
	},
	"dateOfBirth": {
		"de": "Wann wurden Sie geboren? (TT.MM.JJJJ)",
		"en": "When were you born? (DD.MM.YYYY)",
		"tr": "Doğum tarihiniz nedir? (GG.AA.YYYY)",
		"ar": "ما هو تاريخ ميلادك؟",
		"pl": "Kiedy się urodziłeś? (DD.MM.RRRR)",
		"uk": "Коли ви народилися? (ДД.ММ.РРРР)",
		"es": "¿Cuándo nació? (DD.MM.AAAA)",
		"fr": "Quand êtes-vous né? (JJ.MM.AAAA)",
	},
	"nationality": {
		"de": "Welche Staatsangehörigkeit haben Sie?",
		"en": "What is your nationality?",
		"tr": "Uyruğunuz nedir?",
		"ar": "ما هي جنسيتك؟",
		"pl": "Jaką masz narodowość?",
		"uk": "Яке ваше громадянство?",
		"es": "¿Cuál es su nacionalidad?",
		"fr": "Quelle est votre nationalité?",
	},
	"passportNumber": {
		"de": "Wie lautet Ihre Reisepassnummer?",
		"en": "What is your passport number?",
		"tr": "Pasaport numaranız nedir?",
		"ar": "ما هو رقم جواز سفرك؟",
		"pl": "Jaki jest numer Twojego paszportu?",
		"uk": "Який номер вашого паспорта?",
		"es": "¿Cuál es su número de pasaporte?",
		"fr": "Quel est votre numéro de passeport?",
	},
	"currentAddress": {
		"de": "Wie lautet Ihre aktuelle Adresse?",
		"en": "What is your current address?",
		"tr": "Mevcut adresiniz nedir?",
		"ar": "ما هو عنوانك الحالي؟",
		"pl": "Jaki jest Twój obecny adres?",
		"uk": "Яка ваша поточна адреса?",
		"es": "¿Cuál es su dirección actual?",
		"fr": "Quelle est votre adresse actuelle?",
	},
	"phoneNumber": {
		"de": "Wie lautet Ihre Telefonnummer (mit Ländervorwahl)?",
		"en": "What is your phone number (with country code)?",
		"tr": "Telefon numaranız nedir (ülke koduyla)?",
		"ar": "ما هو رقم هاتفك (مع رمز البلد)؟",
		"pl": "Jaki jest Twój numer telefonu (z kodem kraju)?",
		"uk": "Який ваш номер телефону (з кодом країни)?",
		"es": "¿Cuál es su número de teléfono (con código de país)?",
		"fr": "Quel est votre numéro de téléphone (avec indicatif pays)?",
	},
	"email": {
		"de": "Wie lautet Ihre E-Mail-Adresse?",
		"en": "What is your email address?",
		"tr": "E-posta adresiniz nedir?",
		"ar": "ما هو عنوان بريدك الإلكتروني؟",
		"pl": "Jaki jest Twój adres e-mail?",
		"uk": "Яка ваша електронна адреса?",
		"es": "¿Cuál es su dirección de correo electrónico?",
		"fr": "Quelle est votre adresse e-mail?",
	},
	"maritalStatus": {
		"de": "Wie ist Ihr Familienstand? (ledig/verheiratet/geschieden/verwitwet)",
		"en": "What is your marital status? (single/married/divorced/widowed)",
		"tr": "Medeni durumunuz nedir? (bekar/evli/boşanmış/dul)",
		"ar": "ما هي حالتك الاجتماعية؟",
		"pl": "Jaki jest Twój stan cywilny? (kawaler/panna/żonaty/zamężna/rozwiedziony/rozwiedziona/wdowiec/wdowa)",
		"uk": "Який ваш сімейний стан? (неодружений/незаміжня/одружений/заміжня/розлучений/розлучена/вдівець/вдова)",
		"es": "¿Cuál es su estado civil? (soltero/casado/divorciado/viudo)",
		"fr": "Quel est votre état civil? (célibataire/marié/divorcé/veuf)",
	},
	"germanAddress": {
		"de": "Wie lautet Ihre geplante Adresse in Deutschland?",
		"en": "What is your planned address in Germany?",
		"tr": "Almanya'daki planlanan adresiniz nedir?",
		"ar": "ما هو عنوانك المخطط في ألمانيا؟",
		"pl": "Jaki jest Twój planowany adres w Niemczech?",
		"uk": "Яка ваша запланована адреса в Німеччині?",
		"es": "¿Cuál es su dirección prevista en Alemania?",
		"fr": "Quelle est votre adresse prévue en Allemagne?",
	},
	"plannedArrival": {
		"de": "Wann planen Sie nach Deutschland zu kommen?",
		"en": "When do you plan to come to Germany?",
		"tr": "Almanya'ya ne zaman gelmeyi planlıyorsunuz?",
		"ar": "متى تخطط للقدوم إلى ألمانيا؟",
		"pl": "Kiedy planujesz przyjechać do Niemiec?",
		"uk": "Коли ви плануєте приїхати до Німеччини?",
		"es": "¿Cuándo planea venir a Alemania?",
		"fr": "Quand prévoyez-vous de venir en Allemagne?",
	},
	"employerName": {
		"de": "Wie heißt Ihr Arbeitgeber in Deutschland?",
		"en": "What is your employer's name in Germany?",
		"tr": "Almanya'daki işvereninizin adı nedir?",
		"ar": "ما هو اسم صاحب العمل في ألمانيا؟",
		"pl": "Jak nazywa się Twój pracodawca w Niemczech?",
		"uk": "Як називається ваш роботодавець у Німеччині?",
		"es": "¿Cuál es el nombre de su empleador en Alemania?",
		"fr": "Quel est le nom de votre employeur en Allemagne?",
	},
	"employerAddress": {
		"de": "Wie lautet die Adresse Ihres Arbeitgebers?",
		"en": "What is your employer's address?",
		"tr": "İşvereninizin adresi nedir?",
		"ar": "ما هو عنوان صاحب العمل؟",
		"pl": "Jaki jest adres Twojego pracodawcy?",
		"uk": "Яка адреса вашого роботодавця?",
		"es": "¿Cuál es la dirección de su empleador?",
		"fr": "Quelle est l'adresse de votre employeur?",
	},
	"jobTitle": {
		"de": "Welche Position werden Sie haben?",
		"en": "What position will you have?",
		"tr": "Hangi pozisyonda çalışacaksınız?",
		"ar": "ما هو المنصب الذي ستشغله؟",
		"pl": "Jakie stanowisko będziesz zajmować?",
		"uk": "Яку посаду ви займатимете?",
		"es": "¿Qué puesto ocupará?",
		"fr": "Quel poste occuperez-vous?",
	},
	"jobDescription": {
		"de": "Beschreiben Sie kurz Ihre geplanten Tätigkeiten.",
		"en": "Briefly describe your planned activities.",
		"tr": "Planlanan faaliyetlerinizi kısaca açıklayın.",
		"ar": "صف بإيجاز أنشطتك المخططة.",
		"pl": "Krótko opisz planowane czynności.",
		"uk": "Коротко опишіть заплановану діяльність.",
		"es": "Describa brevemente sus actividades previstas.",
		"fr": "Décrivez brièvement vos activités prévues.",
	},
	"contractDuration": {
		"de": "Wie lange ist Ihr Arbeitsvertrag? (unbefristet oder Datum)",
		"en": "How long is your employment contract? (permanent or date)",
		"tr": "İş sözleşmeniz ne kadar süreli? (süresiz veya tarih)",
		"ar": "ما هي مدة عقد العمل؟",
		"pl": "Jak długa jest Twoja umowa o pracę? (na czas nieokreślony lub data)",
		"uk": "Яка тривалість вашого трудового договору? (безстроковий або дата)",
		"es": "¿Cuánto dura su contrato de trabajo? (permanente o fecha)",
		"fr": "Quelle est la durée de votre contrat de travail? (permanent ou date)",
	},
	"salary": {
		"de": "Wie hoch ist Ihr monatliches Bruttogehalt in EUR?",
		"en": "What is your monthly gross salary in EUR?",
		"tr": "Aylık brüt maaşınız kaç EUR?",
		"ar": "ما هو راتبك الشهري الإجمالي باليورو؟",
		"pl": "Jakie jest Twoje miesięczne wynagrodzenie brutto w EUR?",
		"uk": "Яка ваша місячна валова зарплата в EUR?",
		"es": "¿Cuál es su salario bruto mensual en EUR?",
		"fr": "Quel est votre salaire brut mensuel en EUR?",
	},
	"workHours": {
		"de": "Wie viele Stunden werden Sie pro Woche arbeiten?",
		"en": "How many hours will you work per week?",
		"tr": "Haftada kaç saat çalışacaksınız?",
		"ar": "كم ساعة ستعمل في الأسبوع؟",
		"pl": "Ile godzin będziesz pracować w tygodniu?",
		"uk": "Скільки годин на тиждень ви працюватимете?",
		"es": "¿Cuántas horas trabajará por semana?",
		"fr": "Combien d'heures travaillerez-vous par semaine?",
	},
	"previousEmployment": {
		"de": "Beschreiben Sie Ihre Berufserfahrung der letzten 3 Jahre.",
		"en": "Describe your work experience from the last 3 years.",
		"tr": "Son 3 yıldaki iş deneyiminizi açıklayın.",
		"ar": "صف خبرتك المهنية في السنوات الثلاث الماضية.",
		"pl": "Opisz swoje doświadczenie zawodowe z ostatnich 3 lat.",
		"uk": "Опишіть свій досвід роботи за останні 3 роки.",
		"es": "Describa su experiencia laboral de los últimos 3 años.",
		"fr": "Décrivez votre expérience professionnelle des 3 dernières années.",
	},
	"qualifications": {
		"de": "Welche Qualifikationen und Ausbildung haben Sie?",
		"en": "What qualifications and education do you have?",
		"tr": "Hangi niteliklere ve eğitime sahipsiniz?",
		"ar": "ما هي مؤهلاتك وتعليمك؟",
		"pl": "Jakie masz kwalifikacje i wykształcenie?",
		"uk": "Які у вас кваліфікації та освіта?",
		"es": "¿Qué cualificaciones y educación tiene?",
		"fr": "Quelles sont vos qualifications et votre formation?",
	},
	"germanLevel": {
		"de": "Wie gut sind Ihre Deutschkenntnisse? (Keine/A1/A2/B1/B2/C1/C2)",
		"en": "What is your German language level? (None/A1/A2/B1/B2/C1/C2)",
		"tr": "Almanca seviyeniz nedir? (Yok/A1/A2/B1/B2/C1/C2)",
		"ar": "ما هو مستوى لغتك الألمانية؟",
		"pl": "Jaki jest Twój poziom języka niemieckiego? (Brak/A1/A2/B1/B2/C1/C2)",
		"uk": "Який ваш рівень німецької мови? (Немає/A1/A2/B1/B2/C1/C2)",
		"es": "¿Cuál es su nivel de alemán? (Ninguno/A1/A2/B1/B2/C1/C2)",
		"fr": "Quel est votre niveau d'allemand? (Aucun/A1/A2/B1/B2/C1/C2)",
	},
	"criminalRecord": {
		"de": "Haben Sie Vorstrafen? (Ja/Nein)",
		"en": "Do you have a criminal record? (Yes/No)",
		"tr": "Sabıka kaydınız var mı? (Evet/Hayır)",
		"ar": "هل لديك سجل جنائي؟ (نعم/لا)",
		"pl": "Czy byłeś karany? (Tak/Nie)",
		"uk": "Чи маєте ви судимість? (Так/Ні)",
		"es": "¿Tiene antecedentes penales? (Sí/No)",
		"fr": "Avez-vous un casier judiciaire? (Oui/Non)",
	},
	"healthInsurance": {
		"de": "Wie werden Sie krankenversichert sein?",
		"en": "How will you be health insured?",
		"tr": "Sağlık sigortanız nasıl olacak?",
		"ar": "كيف ستكون مؤمناً صحياً؟",
		"pl": "Jak będziesz ubezpieczony zdrowotnie?",
		"uk": "Як ви будете медично застраховані?",
		"es": "¿Cómo estará asegurado médicamente?",
		"fr": "Comment serez-vous assuré pour la santé?",
	},
	"accommodation": {
		"de": "Haben Sie bereits eine Unterkunft in Deutschland?",
		"en": "Do you already have accommodation in Germany?",
		"tr": "Almanya'da kalacak yeriniz var mı?",
		"ar": "هل لديك سكن في ألمانيا؟",
		"pl": "Czy masz już zakwaterowanie w Niemczech?",
		"uk": "Чи маєте ви вже житло в Німеччині?",
		"es": "¿Ya tiene alojamiento en Alemania?",
		"fr": "Avez-vous déjà un logement en Allemagne?",
	},
	"financialSupport": {
		"de": "Wie finanzieren Sie Ihren Aufenthalt?",
		"en": "How will you finance your stay?",
		"tr": "Kalışınızı nasıl finanse edeceksiniz?",
		"ar": "كيف ستمول إقامتك؟",
		"pl": "Jak będziesz finansować swój pobyt?",
		"uk": "Як ви фінансуватимете своє перебування?",
		"es": "¿Cómo financiará su estancia?",
		"fr": "Comment financerez-vous votre séjour?",
	},
}

// Question returns the canned question text for a field in the given
// language, falling back to German, then to a generic prompt.
func Question(fieldID, lang string) string {
	qs, ok := questionBank[fieldID]
	if !ok {
		return "Bitte geben Sie Ihre Antwort ein:"
	}
	if s, ok := qs[lang]; ok {
		return s
	}
	return qs[Fallback]
}
