// Package locale holds the static localization tables used by the
// conversational flow: language names, field labels, the offline question
// bank and the system message templates. Entries fall back to German, the
// form's home language, when a language has no translation.
package locale

const Fallback = "de"

// Names maps a language code to its native display name, used inside
// prompts to pin the response language.
var Names = map[string]string{
	"de": "Deutsch",
	"en": "English",
	"tr": "Türkçe",
	"ar": "العربية",
	"pl": "Polski",
	"uk": "Українська",
	"es": "Español",
	"fr": "Français",
	"ru": "Русский",
	"it": "Italiano",
	"pt": "Português",
	"zh": "中文",
	"ja": "日本語",
	"ko": "한국어",
	"hi": "हिन्दी",
	"fa": "فارسی",
	"ur": "اردو",
	"bn": "বাংলা",
	"vi": "Tiếng Việt",
	"th": "ไทย",
	"ro": "Română",
	"hu": "Magyar",
	"cs": "Čeština",
	"nl": "Nederlands",
	"sv": "Svenska",
	"el": "Ελληνικά",
}

// Name returns the native name of a language code, falling back to English.
func Name(code string) string {
	if n, ok := Names[code]; ok {
		return n
	}
	return Names["en"]
}

// Supported reports whether a language code is known at all.
func Supported(code string) bool {
	_, ok := Names[code]
	return ok
}

func pick(table map[string]string, lang string) string {
	if s, ok := table[lang]; ok {
		return s
	}
	return table[Fallback]
}

var welcome = map[string]string{
	"de": "Willkommen! Ich helfe Ihnen beim Ausfüllen des Arbeitserlaubnis-Antrags.\n\nSie können die Fragen im Chat beantworten oder direkt im Formular eingeben.",
	"en": "Welcome! I will help you fill out the work permit application.\n\nYou can answer questions in the chat or enter directly in the form.",
	"tr": "Hoş geldiniz! Çalışma izni başvurusunu doldurmanıza yardımcı olacağım.\n\nSoruları sohbette cevaplayabilir veya forma doğrudan girebilirsiniz.",
	"ar": "مرحباً! سأساعدك في ملء طلب تصريح العمل.\n\nيمكنك الإجابة على الأسئلة في الدردشة أو الإدخال مباشرة في النموذج.",
	"pl": "Witamy! Pomogę Ci wypełnić wniosek o pozwolenie na pracę.\n\nMożesz odpowiadać na pytania w czacie lub wprowadzać bezpośrednio w formularzu.",
	"uk": "Ласкаво просимо! Я допоможу вам заповнити заявку на дозвіл на роботу.\n\nВи можете відповідати на питання в чаті або вводити безпосередньо у формі.",
	"es": "¡Bienvenido! Te ayudaré a completar la solicitud de permiso de trabajo.\n\nPuedes responder las preguntas en el chat o ingresar directamente en el formulario.",
	"fr": "Bienvenue! Je vais vous aider à remplir la demande de permis de travail.\n\nVous pouvez répondre aux questions dans le chat ou saisir directement dans le formulaire.",
}

var completion = map[string]string{
	"de": "Glückwunsch! Ihr Arbeitserlaubnis-Antrag ist vollständig ausgefüllt. Ihr Antrag ist bereit zur Einreichung.",
	"en": "Congratulations! Your work permit application is complete. Your application is ready for submission.",
	"tr": "Tebrikler! Çalışma izni başvurunuz tamamlandı. Başvurunuz gönderime hazır.",
	"ar": "تهانينا! طلب تصريح العمل الخاص بك مكتمل. طلبك جاهز للتقديم.",
	"pl": "Gratulacje! Twój wniosek o pozwolenie na pracę jest kompletny. Twój wniosek jest gotowy do złożenia.",
	"uk": "Вітаємо! Ваша заявка на дозвіл на роботу заповнена. Ваша заявка готова до подання.",
	"es": "¡Felicitaciones! Tu solicitud de permiso de trabajo está completa. Tu solicitud está lista para enviar.",
	"fr": "Félicitations! Votre demande de permis de travail est complète. Votre demande est prête à être soumise.",
}

var saved = map[string]string{
	"de": "Gespeichert",
	"en": "Saved",
	"tr": "Kaydedildi",
	"ar": "تم الحفظ",
	"pl": "Zapisano",
	"uk": "Збережено",
	"es": "Guardado",
	"fr": "Enregistré",
}

var translating = map[string]string{
	"de": "Übersetze Formulardaten...",
	"en": "Translating form data...",
	"tr": "Form verileri çevriliyor...",
	"ar": "جارٍ ترجمة بيانات النموذج...",
	"pl": "Tłumaczenie danych formularza...",
	"uk": "Переклад даних форми...",
	"es": "Traduciendo datos del formulario...",
	"fr": "Traduction des données du formulaire...",
}

var translated = map[string]string{
	"de": "Formulardaten wurden übersetzt.",
	"en": "Form data has been translated.",
	"tr": "Form verileri çevrildi.",
	"ar": "تمت ترجمة بيانات النموذج.",
	"pl": "Dane formularza zostały przetłumaczone.",
	"uk": "Дані форми перекладено.",
	"es": "Los datos del formulario han sido traducidos.",
	"fr": "Les données du formulaire ont été traduites.",
}

var translationFailed = map[string]string{
	"de": "Übersetzung fehlgeschlagen. Formulardaten bleiben unverändert.",
	"en": "Translation failed. Form data remains unchanged.",
	"tr": "Çeviri başarısız oldu. Form verileri değişmeden kaldı.",
	"ar": "فشلت الترجمة. تبقى بيانات النموذج دون تغيير.",
	"pl": "Tłumaczenie nie powiodło się. Dane formularza pozostają niezmienione.",
	"uk": "Переклад не вдався. Дані форми залишаються без змін.",
	"es": "La traducción falló. Los datos del formulario permanecen sin cambios.",
	"fr": "La traduction a échoué. Les données du formulaire restent inchangées.",
}

var demoFilled = map[string]string{
	"de": "Demo-Daten wurden erfolgreich eingefügt.",
	"en": "Demo data has been successfully filled.",
	"tr": "Demo verileri başarıyla dolduruldu.",
	"ar": "تم ملء البيانات التجريبية بنجاح.",
	"pl": "Dane demonstracyjne zostały pomyślnie wypełnione.",
	"uk": "Демо-дані успішно заповнені.",
	"es": "Los datos de demostración se han rellenado con éxito.",
	"fr": "Les données de démonstration ont été remplies avec succès.",
}

var summaryFailed = map[string]string{
	"de": "Zusammenfassung derzeit nicht verfügbar.",
	"en": "Summary is currently unavailable.",
	"tr": "Özet şu anda kullanılamıyor.",
	"ar": "الملخص غير متاح حالياً.",
	"pl": "Podsumowanie jest obecnie niedostępne.",
	"uk": "Підсумок наразі недоступний.",
	"es": "El resumen no está disponible actualmente.",
	"fr": "Le résumé n'est pas disponible actuellement.",
}

func Welcome(lang string) string           { return pick(welcome, lang) }
func Completion(lang string) string        { return pick(completion, lang) }
func Saved(lang string) string             { return pick(saved, lang) }
func Translating(lang string) string       { return pick(translating, lang) }
func Translated(lang string) string        { return pick(translated, lang) }
func TranslationFailed(lang string) string { return pick(translationFailed, lang) }
func DemoFilled(lang string) string        { return pick(demoFilled, lang) }
func SummaryFailed(lang string) string     { return pick(summaryFailed, lang) }
