package composer

import (
	"fmt"
	"strings"

	"github.com/frontdeskai/receptionist-core/internal/core/assembler"
	"github.com/frontdeskai/receptionist-core/internal/core/enhance"
	"github.com/frontdeskai/receptionist-core/internal/models"
)

// maxFAQEntries bounds the inlined FAQ block so prompt size stays predictable.
const maxFAQEntries = 10

// ErrUnresolvedPlaceholder indicates the composed output still contains
// placeholder syntax. This is a programming defect, not a runtime condition:
// callers should treat it as fatal.
type ErrUnresolvedPlaceholder struct {
	Leftover string
}

func (e *ErrUnresolvedPlaceholder) Error() string {
	return fmt.Sprintf("composer produced unresolved placeholder near %q", e.Leftover)
}

// Compose renders the meta-prompt instruction document for one language.
// The output is an opaque instruction string for the generation backend,
// not the final artifact. Substitution is total: leftover placeholder
// syntax returns ErrUnresolvedPlaceholder.
func Compose(pctx *assembler.PromptContext, lang string) (string, error) {
	template := masterTemplateEN
	labels := labelsEN
	weekdays := weekdayNamesEN
	descriptions := personalityDescriptionsEN
	if lang == enhance.LangES {
		template = masterTemplateES
		labels = labelsES
		weekdays = weekdayNamesES
		descriptions = personalityDescriptionsES
	}

	industry := enhance.LookupIndustry(pctx.BusinessType)

	replacements := []string{
		"{{AGENT_NAME}}", pctx.AgentName,
		"{{BUSINESS_NAME}}", pctx.BusinessName,
		"{{BUSINESS_TYPE}}", pctx.BusinessType,
		"{{PERSONALITY_DESCRIPTION}}", descriptions[pctx.Personality],
		"{{GREETING}}", greeting(pctx, lang),
		"{{SERVICE_AREA_LINE}}", serviceAreaLine(pctx, lang),
		"{{HOURS_BLOCK}}", hoursBlock(pctx, labels, weekdays),
		"{{SERVICES_BLOCK}}", servicesBlock(pctx, labels, lang),
		"{{KNOWLEDGE_BLOCK}}", knowledgeBlock(pctx, labels),
		"{{FAQ_BLOCK}}", faqBlock(pctx, labels),
		"{{OFFERS_BLOCK}}", offersBlock(pctx, labels),
		"{{TONE_GUIDANCE}}", toneGuidance(pctx, industry, lang),
		"{{BOOKING_BLOCK}}", bookingBlock(pctx, lang),
		"{{GUARDRAILS_BLOCK}}", guardrailsBlock(pctx, industry, lang),
		"{{SENTIMENT_BLOCK}}", sentimentBlock(pctx, lang),
		"{{TOOLS_BLOCK}}", toolsBlock(pctx, lang),
		"{{INDUSTRY_SECTION}}", industrySection(pctx, industry, labels, lang),
		"{{FEWSHOT_SECTION}}", fewShotSection(pctx, industry, labels),
		"{{ERROR_SECTION}}", errorSection(pctx, labels, lang),
		"{{CALLER_SECTION}}", callerSection(pctx, labels, lang),
	}

	out := strings.NewReplacer(replacements...).Replace(template)

	if i := strings.Index(out, "{{"); i >= 0 {
		end := i + 24
		if end > len(out) {
			end = len(out)
		}
		return "", &ErrUnresolvedPlaceholder{Leftover: out[i:end]}
	}

	// Collapse blank runs left by empty optional blocks.
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(out) + "\n", nil
}

func greeting(pctx *assembler.PromptContext, lang string) string {
	if lang == enhance.LangES {
		if pctx.GreetingES != "" {
			return pctx.GreetingES
		}
		return fmt.Sprintf("Gracias por llamar a %s, le atiende %s. ¿En qué puedo ayudarle?", pctx.BusinessName, pctx.AgentName)
	}
	if pctx.GreetingEN != "" {
		return pctx.GreetingEN
	}
	return fmt.Sprintf("Thank you for calling %s, this is %s. How can I help you today?", pctx.BusinessName, pctx.AgentName)
}

func serviceAreaLine(pctx *assembler.PromptContext, lang string) string {
	var parts []string
	if pctx.ServiceArea != "" {
		if lang == enhance.LangES {
			parts = append(parts, fmt.Sprintf("Zona de servicio: %s.", pctx.ServiceArea))
		} else {
			parts = append(parts, fmt.Sprintf("Service area: %s.", pctx.ServiceArea))
		}
	}
	if len(pctx.Differentiators) > 0 {
		if lang == enhance.LangES {
			parts = append(parts, fmt.Sprintf("Lo que distingue al negocio: %s.", strings.Join(pctx.Differentiators, "; ")))
		} else {
			parts = append(parts, fmt.Sprintf("What sets the business apart: %s.", strings.Join(pctx.Differentiators, "; ")))
		}
	}
	return strings.Join(parts, "\n")
}

func hoursBlock(pctx *assembler.PromptContext, labels sectionLabels, weekdays map[string]string) string {
	var sb strings.Builder
	for _, key := range assembler.WeekdayKeys {
		day := pctx.Hours[key]
		if day.Closed() {
			fmt.Fprintf(&sb, "- %s: %s\n", weekdays[key], labels.closed)
		} else {
			fmt.Fprintf(&sb, "- %s: %s - %s\n", weekdays[key], day.Open, day.Close)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func servicesBlock(pctx *assembler.PromptContext, labels sectionLabels, lang string) string {
	if len(pctx.Services) == 0 {
		return labels.noServices
	}
	var sb strings.Builder
	sb.WriteString(labels.servicesHeader)
	sb.WriteString("\n")
	for _, s := range pctx.Services {
		if lang == enhance.LangES {
			fmt.Fprintf(&sb, "- %s: %d minutos, $%s\n", s.Name, s.DurationMinutes, s.Price)
		} else {
			fmt.Fprintf(&sb, "- %s: %d minutes, $%s\n", s.Name, s.DurationMinutes, s.Price)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func knowledgeBlock(pctx *assembler.PromptContext, labels sectionLabels) string {
	if len(pctx.Knowledge) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(labels.knowledgeHeader)
	sb.WriteString("\n")
	for _, k := range pctx.Knowledge {
		fmt.Fprintf(&sb, "- %s\n", k)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func faqBlock(pctx *assembler.PromptContext, labels sectionLabels) string {
	if len(pctx.FAQs) == 0 {
		return ""
	}
	faqs := pctx.FAQs
	if len(faqs) > maxFAQEntries {
		faqs = faqs[:maxFAQEntries]
	}
	var sb strings.Builder
	sb.WriteString(labels.faqHeader)
	sb.WriteString("\n")
	for _, f := range faqs {
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n", f.Question, f.Answer)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func offersBlock(pctx *assembler.PromptContext, labels sectionLabels) string {
	if len(pctx.Offers) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(labels.offersHeader)
	sb.WriteString("\n")
	for _, o := range pctx.Offers {
		fmt.Fprintf(&sb, "- [%s] %s", o.Kind, o.Title)
		if o.Details != "" {
			fmt.Fprintf(&sb, ": %s", o.Details)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// toneGuidance merges the personality baseline, the industry tone packet and
// the configured tone intensity into one paragraph.
func toneGuidance(pctx *assembler.PromptContext, industry *enhance.IndustryProfile, lang string) string {
	var sb strings.Builder
	sb.WriteString(industry.ToneFor(pctx.Personality))

	intensity := pctx.Enhancements.ToneIntensity
	switch {
	case intensity <= 1:
		if lang == enhance.LangES {
			sb.WriteString(" Mantén la expresión de personalidad muy sutil: neutral y directa ante todo.")
		} else {
			sb.WriteString(" Keep the personality expression very subtle: neutral and to the point above all.")
		}
	case intensity == 2:
		if lang == enhance.LangES {
			sb.WriteString(" Deja que la personalidad se note solo ligeramente.")
		} else {
			sb.WriteString(" Let the personality show only lightly.")
		}
	case intensity == 4:
		if lang == enhance.LangES {
			sb.WriteString(" Deja que la personalidad se note claramente en cada respuesta.")
		} else {
			sb.WriteString(" Let the personality come through clearly in every response.")
		}
	case intensity >= 5:
		if lang == enhance.LangES {
			sb.WriteString(" Expresa la personalidad al máximo en cada frase, sin perder claridad.")
		} else {
			sb.WriteString(" Express the personality fully in every sentence without losing clarity.")
		}
	}
	return sb.String()
}

func bookingBlock(pctx *assembler.PromptContext, lang string) string {
	if !pctx.BookingEnabled {
		if lang == enhance.LangES {
			return "La agenda de citas está desactivada: toma un mensaje detallado en lugar de agendar."
		}
		return "Appointment booking is disabled: take a detailed message instead of booking."
	}
	if pctx.BookingRules == "" {
		return ""
	}
	if lang == enhance.LangES {
		return "Reglas de agendado: " + pctx.BookingRules
	}
	return "Booking rules: " + pctx.BookingRules
}

func guardrailsBlock(pctx *assembler.PromptContext, industry *enhance.IndustryProfile, lang string) string {
	var sb strings.Builder
	if lang == enhance.LangES {
		sb.WriteString("- Nunca inventes información que no esté en este documento.\n")
		sb.WriteString("- Nunca confirmes algo de lo que no estés segura; ofrece tomar un mensaje.\n")
	} else {
		sb.WriteString("- Never invent information that is not in this document.\n")
		sb.WriteString("- Never confirm something you are not sure about; offer to take a message instead.\n")
	}
	for _, g := range industry.Guardrails {
		fmt.Fprintf(&sb, "- %s\n", g)
	}
	for _, phrase := range pctx.NeverSay {
		if lang == enhance.LangES {
			fmt.Fprintf(&sb, "- Nunca digas: %q.\n", phrase)
		} else {
			fmt.Fprintf(&sb, "- Never say: %q.\n", phrase)
		}
	}
	if pctx.MinutesExhausted {
		if lang == enhance.LangES {
			sb.WriteString("- El plan de minutos del negocio está agotado: mantén las llamadas breves, toma mensajes y evita conversaciones largas.\n")
		} else {
			sb.WriteString("- The business has exhausted its minutes plan: keep calls brief, take messages, and avoid long conversations.\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func sentimentBlock(pctx *assembler.PromptContext, lang string) string {
	level := pctx.Enhancements.SentimentDetectionLevel
	if level == models.SentimentDetectionNone || level == "" {
		if lang == enhance.LangES {
			return "Mantente atenta al estado de ánimo de la persona y ajusta tu tono con sentido común."
		}
		return "Stay aware of the caller's mood and adjust your tone with common sense."
	}

	var sb strings.Builder
	if lang == enhance.LangES {
		sb.WriteString("Detecta el estado emocional de la persona y adapta tu respuesta:\n")
	} else {
		sb.WriteString("Detect the caller's emotional state and adapt your response:\n")
	}

	for _, sl := range enhance.SentimentLevels() {
		if level == models.SentimentDetectionBasic && !sl.EscalationWorthy() && sl.Category != enhance.SentimentPositive {
			// Basic mode keeps the block short: positives plus anything
			// escalation-worthy.
			if sl.Name != "neutral" {
				continue
			}
		}
		fmt.Fprintf(&sb, "- %s (%s): %s\n", sl.Name, sl.Category, sl.ResponseFor(pctx.Personality))
		if sl.EscalationWorthy() {
			if lang == enhance.LangES {
				sb.WriteString("  Si detectas este estado, ofrece escalar con una persona del negocio.\n")
			} else {
				sb.WriteString("  If you detect this state, offer to escalate to a human at the business.\n")
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func toolsBlock(pctx *assembler.PromptContext, lang string) string {
	var sb strings.Builder
	if pctx.TransferNumber != "" {
		if lang == enhance.LangES {
			fmt.Fprintf(&sb, "- Transferencia de llamadas disponible al %s.", pctx.TransferNumber)
		} else {
			fmt.Fprintf(&sb, "- Call transfer is available to %s.", pctx.TransferNumber)
		}
		if pctx.TransferRules != "" {
			fmt.Fprintf(&sb, " %s", pctx.TransferRules)
		}
		sb.WriteString("\n")
	} else {
		if lang == enhance.LangES {
			sb.WriteString("- No hay transferencia de llamadas disponible; toma un mensaje detallado en su lugar.\n")
		} else {
			sb.WriteString("- No call transfer is available; take a detailed message instead.\n")
		}
	}
	if pctx.AfterHoursRules != "" {
		if lang == enhance.LangES {
			fmt.Fprintf(&sb, "- Fuera de horario: %s\n", pctx.AfterHoursRules)
		} else {
			fmt.Fprintf(&sb, "- After hours: %s\n", pctx.AfterHoursRules)
		}
	}
	if lang == enhance.LangES {
		sb.WriteString("- Para agendar, confirma siempre nombre, número de contacto, servicio y hora antes de cerrar la llamada.")
	} else {
		sb.WriteString("- When booking, always confirm name, contact number, service and time before ending the call.")
	}
	return sb.String()
}

func industrySection(pctx *assembler.PromptContext, industry *enhance.IndustryProfile, labels sectionLabels, lang string) string {
	if !pctx.Enhancements.IndustryEnhancements {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(labels.industryTitle)
	sb.WriteString("\n\n")
	if lang == enhance.LangES {
		fmt.Fprintf(&sb, "Este negocio opera como: %s.\n", industry.DisplayName)
		fmt.Fprintf(&sb, "Terminología que debes conocer: %s.\n", strings.Join(industry.Terminology, ", "))
		sb.WriteString("Situaciones frecuentes:\n")
	} else {
		fmt.Fprintf(&sb, "This business operates as: %s.\n", industry.DisplayName)
		fmt.Fprintf(&sb, "Terminology you should know: %s.\n", strings.Join(industry.Terminology, ", "))
		sb.WriteString("Common situations:\n")
	}
	for _, sc := range industry.Scenarios {
		if lang == enhance.LangES {
			fmt.Fprintf(&sb, "- Cuando la persona mencione %q: %s\n", sc.Trigger, sc.Instruction)
		} else {
			fmt.Fprintf(&sb, "- When the caller mentions %q: %s\n", sc.Trigger, sc.Instruction)
		}
	}
	if len(industry.UrgencyKeywords) > 0 {
		if lang == enhance.LangES {
			fmt.Fprintf(&sb, "Trata como urgente cualquier mención de: %s.\n", strings.Join(industry.UrgencyKeywords, ", "))
		} else {
			fmt.Fprintf(&sb, "Treat any mention of these as urgent: %s.\n", strings.Join(industry.UrgencyKeywords, ", "))
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func fewShotSection(pctx *assembler.PromptContext, industry *enhance.IndustryProfile, labels sectionLabels) string {
	if !pctx.Enhancements.FewShotExamplesEnabled {
		return ""
	}
	max := pctx.Enhancements.MaxFewShotExamples
	if max <= 0 {
		max = 3
	}
	examples := enhance.SelectFewShot(pctx.Personality, industry.Key, max)
	if len(examples) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(labels.fewShotTitle)
	sb.WriteString("\n\n")
	for _, e := range examples {
		sb.WriteString(e.Render())
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// errorSection inlines a representative subset of recovery templates; the
// full table is large, and the prompt only needs the kinds a live call hits
// most often.
var inlinedErrorKinds = []enhance.ErrorKind{
	enhance.ErrDidNotUnderstand,
	enhance.ErrNoAvailability,
	enhance.ErrMissingInfo,
	enhance.ErrOutOfScope,
	enhance.ErrTransferFailed,
	enhance.ErrRepeatedFailure,
}

func errorSection(pctx *assembler.PromptContext, labels sectionLabels, lang string) string {
	if !pctx.Enhancements.PersonalityAwareErrors {
		return ""
	}
	personality := pctx.Personality
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(labels.errorTitle)
	sb.WriteString("\n\n")
	if lang == enhance.LangES {
		sb.WriteString("Cuando algo salga mal, recupérate con estas tres partes: disculpa, ofrecimiento y retorno al tema.\n")
	} else {
		sb.WriteString("When something goes wrong, recover with these three parts: apology, offer, and return to topic.\n")
	}
	for _, kind := range inlinedErrorKinds {
		tmpl, ok := enhance.LookupErrorTemplate(kind, personality, lang)
		if !ok {
			continue
		}
		rendered := tmpl.Render("")
		fmt.Fprintf(&sb, "- %s: %q / %q / %q\n", kind, rendered.Initial, rendered.FollowUp, rendered.Recovery)
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func callerSection(pctx *assembler.PromptContext, labels sectionLabels, lang string) string {
	if !pctx.Enhancements.CallerContextEnabled {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(labels.callerTitle)
	sb.WriteString("\n\n")
	if lang == enhance.LangES {
		sb.WriteString("Al inicio de cada llamada recibirás contexto sobre la persona que llama.\n")
		sb.WriteString("- Persona nueva: preséntate con naturalidad y pide su nombre pronto.\n")
		sb.WriteString("- Persona recurrente: dale la bienvenida de nuevo y no vuelvas a pedir datos que ya están registrados.\n")
		sb.WriteString("- Persona VIP (cinco o más llamadas, o tres o más citas): prioriza sus solicitudes y ofrece las mejores opciones primero.\n")
		sb.WriteString("- Si el contexto indica una experiencia negativa previa, sé especialmente atenta y ofrece escalar con el dueño.")
	} else {
		sb.WriteString("At the start of each call you will receive context about the caller.\n")
		sb.WriteString("- New caller: introduce the business naturally and ask for their name early.\n")
		sb.WriteString("- Repeat caller: welcome them back and do not re-ask for information already on file.\n")
		sb.WriteString("- VIP caller (five or more calls, or three or more appointments): prioritize their requests and offer the best options first.\n")
		sb.WriteString("- If the context notes a previous negative experience, be extra attentive and offer escalation to the owner.")
	}
	return sb.String() + "\n"
}
