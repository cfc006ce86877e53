package outbreak

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"swasthya/domain"
)

var introByLang = map[domain.Language]string{
	domain.English: "🦠 *Latest Disease Outbreak Information from Ministry of Health & Family Welfare:*\n\n",
	domain.Hindi:   "🦠 *स्वास्थ्य और परिवार कल्याण मंत्रालय से नवीनतम बीमारी प्रकोप की जानकारी:*\n\n",
	domain.Telugu:  "🦠 *ఆరోగ్య మరియు కుటుంబ సంక్షేమ మంత్రిత్వ శాఖ నుండి తాజా వ్యాధి వ్యాప్తి సమాచారం:*\n\n",
}

var weekLabelByLang = map[domain.Language]string{
	domain.English: "Week",
	domain.Hindi:   "सप्ताह",
	domain.Telugu:  "వారం",
}

var accessLabelByLang = map[domain.Language]string{
	domain.English: "📄 Access Report:",
	domain.Hindi:   "📄 रिपोर्ट तक पहुंचें:",
	domain.Telugu:  "📄 రిపోర్ట్‌ను యాక్సెస్ చేయండి:",
}

var guidanceByLang = map[domain.Language]string{
	domain.English: "💡 *Note:* These reports contain official information about disease outbreaks in different states. Click the links to view the detailed PDF reports from the Integrated Disease Surveillance Programme (IDSP).",
	domain.Hindi:   "💡 *नोट:* इन रिपोर्टों में विभिन्न राज्यों में बीमारी के प्रकोप के बारे में आधिकारिक जानकारी है। एकीकृत रोग निगरानी कार्यक्रम (आईडीएसपी) से विस्तृत पीडीएफ रिपोर्ट देखने के लिए लिंक पर क्लिक करें।",
	domain.Telugu:  "💡 *గమనిక:* ఈ నివేదికలు వివిధ రాష్ట్రాలలో వ్యాధి వ్యాప్తికి సంబంధించిన అధికారిక సమాచారాన్ని కలిగి ఉన్నాయి. ఇంటిగ్రేటెడ్ డిసీజ్ సర్వైలెన్స్ ప్రోగ్రామ్ (IDSP) నుండి వివరణాత్మక PDF నివేదికలను చూడటానికి లింక్‌లపై క్లిక్ చేయండి.",
}

var unavailableByLang = map[domain.Language]string{
	domain.English: "Sorry, I couldn't fetch the latest disease outbreak information right now. Please try again later.",
	domain.Hindi:   "क्षमा करें, मैं अभी नवीनतम बीमारी के प्रकोप की जानकारी प्राप्त नहीं कर सका। कृपया बाद में पुनः प्रयास करें।",
	domain.Telugu:  "క్షమించండి, నేను ఇప్పుడు తాజా వ్యాధి వ్యాప్తి సమాచారాన్ని పొందలేకపోయాను. దయచేసి తర్వాత మళ్లీ ప్రయత్నించండి.",
}

// Respond renders the outbreak reply listing the given bulletins in the
// user's language.
func Respond(links []domain.BulletinLink, lang domain.Language) string {
	if len(links) == 0 {
		return Unavailable(lang)
	}

	entries := lo.Map(links, func(link domain.BulletinLink, i int) string {
		return fmt.Sprintf("*%d. %s %d, %d*\n%s %s\n\n",
			i+1, pick(weekLabelByLang, lang), link.Week, link.Year,
			pick(accessLabelByLang, lang), link.URL)
	})

	var b strings.Builder
	b.WriteString(pick(introByLang, lang))
	b.WriteString(strings.Join(entries, ""))
	b.WriteString("\n")
	b.WriteString(pick(guidanceByLang, lang))
	return b.String()
}

// Unavailable is the reply when no bulletin data can be served.
func Unavailable(lang domain.Language) string {
	return pick(unavailableByLang, lang)
}

func pick(m map[domain.Language]string, lang domain.Language) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m[domain.English]
}
