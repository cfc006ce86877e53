package ai

// prompts.go holds the natural-language templates sent to the generative
// model and the canned texts returned when it cannot be reached. Keeping
// them in one file makes them easy to tune without touching the client code.

import (
	"fmt"

	"swasthya/domain"
)

const advicePromptTemplate = `You are a multilingual health awareness assistant for rural and semi-urban India.

DETECTED LANGUAGE: %s (%s)

INSTRUCTIONS:
1. Respond in the SAME language as the user's question: %s
2. Use simple, easy-to-understand language suitable for rural/semi-urban populations
3. Focus ONLY on:
   - Preventive healthcare measures
   - General health tips and wellness advice
   - Recognizing disease symptoms for awareness
   - Encouraging healthy lifestyle habits
   - When to seek professional medical help
   - Basic hygiene and sanitation practices
   - Nutrition and dietary advice for prevention

IMPORTANT RESTRICTIONS:
- NEVER provide specific medical diagnoses
- NEVER recommend specific medications or treatments
- NEVER replace professional medical advice
- Always suggest consulting local healthcare professionals, PHCs, or ASHA workers
- Keep responses concise and practical for WhatsApp
- Use culturally appropriate advice for Indian context
- Mention government healthcare schemes when relevant (Ayushman Bharat, etc.)

USER QUESTION (in %s): %s

Provide helpful health awareness information in %s, keeping it simple and culturally appropriate for rural India.`

const imagePromptTemplate = `URGENT: WhatsApp has a hard character limit. Be EXTREMELY concise.

You are a multilingual health awareness assistant for rural and semi-urban India.
Analyze this health image%s

FORMAT (MAX 1000 characters including emojis):
🔍 What I see: [1 sentence max]
⚠️ Concern: Normal/Mild/Moderate/Serious
💡 Advice: [2-3 bullet points max]
🏥 Action: [When to see doctor - 1 sentence]

CRITICAL RULES:
- MAXIMUM 1000 characters total
- Respond ONLY in %s
- No detailed descriptions
- No medical diagnoses
- Be direct and helpful

Keep it SHORT for mobile messaging!`

// AdvicePrompt renders the text-question prompt for the given language.
func AdvicePrompt(question string, lang domain.Language) string {
	name := lang.Name()
	return fmt.Sprintf(advicePromptTemplate, name, string(lang), name, name, question, name)
}

// ImagePrompt renders the image-analysis prompt. The question is optional.
func ImagePrompt(question string, lang domain.Language) string {
	qualifier := "."
	if question != "" {
		qualifier = fmt.Sprintf(" for: %q", question)
	}
	return fmt.Sprintf(imagePromptTemplate, qualifier, lang.Name())
}

var disclaimerByLang = map[domain.Language]string{
	domain.English: "\n\n⚠️ *Remember: This is general health information. Always consult a healthcare professional, PHC, or ASHA worker for personalized medical advice.*",
	domain.Hindi:   "\n\n⚠️ *याद रखें: यह सामान्य स्वास्थ्य जानकारी है। व्यक्तिगत चिकित्सा सलाह के लिए हमेशा स्वास्थ्य पेशेवर, PHC या आशा कार्यकर्ता से सलाह लें।*",
	domain.Telugu:  "\n\n⚠️ *గుర్తుంచుకోండి: ఇది సాధారణ ఆరోగ్య సమాచారం. వ్యక్తిగత వైద్య సలహా కోసం ఎల్లప్పుడూ ఆరోగ్య నిపుణుడు, PHC లేదా ఆశా కార్యకర్తను సంప్రదించండి.*",
}

var imageDisclaimerByLang = map[domain.Language]string{
	domain.English: "\n\n⚠️ *AI analysis only. Consult doctor for diagnosis.*",
	domain.Hindi:   "\n\n⚠️ *केवल AI विश्लेषण। निदान के लिए डॉक्टर से सलाह लें।*",
	domain.Telugu:  "\n\n⚠️ *AI విశ్లేషణ మాత్రమే। నిర్ధారణ కోసం వైద్యుడిని సంప్రదించండి।*",
}

var errorFallbackByLang = map[domain.Language]string{
	domain.English: "Sorry, I couldn't process your request right now. Please try again.",
	domain.Hindi:   "क्षमा करें, मैं अभी आपके अनुरोध को संसाधित नहीं कर सका। कृपया पुनः प्रयास करें।",
	domain.Telugu:  "క్షమించండి, నేను ఇప్పుడు మీ అభ్యర్థనను ప్రాసెస్ చేయలేకపోయాను. దయచేసి మళ్లీ ప్రయత్నించండి.",
}

var imageErrorFallbackByLang = map[domain.Language]string{
	domain.English: "I had trouble analyzing your image. Please ensure it's a clear photo and try again, or describe what you're seeing so I can help.",
	domain.Hindi:   "मुझे आपकी छवि का विश्लेषण करने में समस्या हुई। कृपया सुनिश्चित करें कि यह एक स्पष्ट फोटो है और पुनः प्रयास करें, या वर्णन करें कि आप क्या देख रहे हैं ताकि मैं मदद कर सकूं।",
	domain.Telugu:  "మీ చిత్రాన్ని విశ్లేషించడంలో నాకు ఇబ్బంది ఎదురైంది. దయచేసి ఇది స్పష్టమైన ఫోటో అని నిర్ధారించుకోండి మరియు మళ్లీ ప్రయత్నించండి, లేదా మీరు ఏమి చూస్తున్నారో వివరించండి తద్వారా నేను సహాయం చేయగలను.",
}

// emergencyImageFallbackByLang is the ultra-minimal analysis emitted when a
// model response cannot be capped any other way.
var emergencyImageFallbackByLang = map[domain.Language]string{
	domain.English: "🔍 What I see: Skin condition visible\n⚠️ Concern: Moderate\n💡 Advice: Keep clean, see dermatologist\n🏥 Action: Visit doctor soon",
	domain.Hindi:   "🔍 दिख रहा है: त्वचा की समस्या\n⚠️ चिंता: मध्यम\n💡 सलाह: साफ रखें, डॉक्टर से मिलें\n🏥 कार्य: जल्दी डॉक्टर के पास जाएं",
	domain.Telugu:  "🔍 కనిపిస్తుంది: చర్మ సమస్య\n⚠️ ఆందోళన: మధ్యమ\n💡 సలహా: శుభ్రంగా ఉంచండి, వైద్యుడిని చూడండి\n🏥 చర్య: త్వరగా డాక్టర్ దగ్గరకు వెళ్ళండి",
}

// HelpMessage greets users whose turn carried no usable input.
var helpMessageByLang = map[domain.Language]string{
	domain.English: "Hi! I'm your health assistant. You can:\n• Ask health questions in English, Hindi, or Telugu\n• Send images with health-related questions\n• Get general health advice and wellness tips",
	domain.Hindi:   "नमस्ते! मैं आपका स्वास्थ्य सहायक हूं। आप:\n• अंग्रेजी, हिंदी या तेलुगु में स्वास्थ्य प्रश्न पूछ सकते हैं\n• स्वास्थ्य से जुड़े प्रश्नों के साथ छवियां भेज सकते हैं\n• सामान्य स्वास्थ्य सलाह प्राप्त कर सकते हैं",
	domain.Telugu:  "నమస్కారం! నేను మీ ఆరోగ్య సహాయకుడిని. మీరు:\n• ఇంగ్లీష్, హిందీ లేదా తెలుగులో ఆరోగ్య ప్రశ్నలు అడగవచ్చు\n• ఆరోగ్య సంబంధిత ప్రశ్నలతో చిత్రాలు పంపవచ్చు\n• సాధారణ ఆరోగ్య సలహా పొందవచ్చు",
}

// HelpMessage returns the onboarding text in the given language.
func HelpMessage(lang domain.Language) string {
	return pick(helpMessageByLang, lang)
}

// ImageErrorMessage is sent when an attached image cannot be fetched or is
// not a supported format.
func ImageErrorMessage(lang domain.Language) string {
	return pick(imageErrorFallbackByLang, lang)
}

func pick(m map[domain.Language]string, lang domain.Language) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m[domain.English]
}
