package enhance

import (
	"strings"
)

// ErrorKind names a recoverable conversational failure during a call.
type ErrorKind string

const (
	ErrDidNotUnderstand  ErrorKind = "did_not_understand"
	ErrNoAvailability    ErrorKind = "no_availability"
	ErrMissingInfo       ErrorKind = "missing_info"
	ErrSystemIssue       ErrorKind = "system_issue"
	ErrOutOfScope        ErrorKind = "out_of_scope"
	ErrTransferFailed    ErrorKind = "transfer_failed"
	ErrBookingConflict   ErrorKind = "booking_conflict"
	ErrPaymentQuestion   ErrorKind = "payment_question"
	ErrAfterHours        ErrorKind = "after_hours"
	ErrCallerUnclearName ErrorKind = "caller_unclear_name"
	ErrRepeatedFailure   ErrorKind = "repeated_failure"
	ErrLanguageBarrier   ErrorKind = "language_barrier"
)

// ErrorKinds lists every error kind, for composition and tests.
var ErrorKinds = []ErrorKind{
	ErrDidNotUnderstand, ErrNoAvailability, ErrMissingInfo, ErrSystemIssue,
	ErrOutOfScope, ErrTransferFailed, ErrBookingConflict, ErrPaymentQuestion,
	ErrAfterHours, ErrCallerUnclearName, ErrRepeatedFailure, ErrLanguageBarrier,
}

// Personalities lists the supported personalities in registry order.
var Personalities = []string{"professional", "friendly", "casual"}

// Languages supported by the template table.
const (
	LangEN = "en"
	LangES = "es"
)

// ErrorTemplate is the 3-part recovery message for one
// (kind, personality, language) cell.
type ErrorTemplate struct {
	Initial  string // apology / acknowledgment
	FollowUp string // offer to move forward
	Recovery string // line that gets the call back on track
}

// Render substitutes the literal {field} placeholder when the template
// references a missing piece of information. Plain string replacement,
// no templating engine.
func (t ErrorTemplate) Render(field string) ErrorTemplate {
	if field == "" {
		field = "that information"
	}
	return ErrorTemplate{
		Initial:  strings.ReplaceAll(t.Initial, "{field}", field),
		FollowUp: strings.ReplaceAll(t.FollowUp, "{field}", field),
		Recovery: strings.ReplaceAll(t.Recovery, "{field}", field),
	}
}

// LookupErrorTemplate returns the template for a kind, personality and
// language. Unknown personalities fall back to professional; unknown
// languages fall back to English. The table is total over the declared
// kinds, so known kinds never miss.
func LookupErrorTemplate(kind ErrorKind, personality, lang string) (ErrorTemplate, bool) {
	byPersonality, ok := errorTemplates[kind]
	if !ok {
		return ErrorTemplate{}, false
	}
	byLang, ok := byPersonality[personality]
	if !ok {
		byLang = byPersonality["professional"]
	}
	tmpl, ok := byLang[lang]
	if !ok {
		tmpl = byLang[LangEN]
	}
	return tmpl, true
}

// errorTemplates is the fixed 12 kinds x 3 personalities x 2 languages table.
// Spanish rows keep 1:1 structural parity with English: same three parts,
// same placeholders.
var errorTemplates = map[ErrorKind]map[string]map[string]ErrorTemplate{
	ErrDidNotUnderstand: {
		"professional": {
			LangEN: {
				Initial:  "I apologize, I didn't quite catch that.",
				FollowUp: "Could you please repeat it for me?",
				Recovery: "I want to make sure I handle your request correctly.",
			},
			LangES: {
				Initial:  "Le pido disculpas, no entendí bien eso.",
				FollowUp: "¿Podría repetírmelo, por favor?",
				Recovery: "Quiero asegurarme de atender su solicitud correctamente.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "Oh, I'm sorry — I missed that!",
				FollowUp: "Would you mind saying it one more time?",
				Recovery: "I want to get this exactly right for you.",
			},
			LangES: {
				Initial:  "¡Ay, perdón — no lo escuché bien!",
				FollowUp: "¿Le importaría decirlo una vez más?",
				Recovery: "Quiero hacer esto exactamente bien para usted.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Sorry, I didn't catch that.",
				FollowUp: "Can you say that again?",
				Recovery: "Just want to make sure I've got it right.",
			},
			LangES: {
				Initial:  "Perdón, no capté eso.",
				FollowUp: "¿Lo puedes decir otra vez?",
				Recovery: "Solo quiero asegurarme de entenderlo bien.",
			},
		},
	},
	ErrNoAvailability: {
		"professional": {
			LangEN: {
				Initial:  "I'm sorry, we don't have availability at that time.",
				FollowUp: "May I offer you the nearest alternative slot?",
				Recovery: "I can also add you to the waitlist should anything open up.",
			},
			LangES: {
				Initial:  "Lo siento, no tenemos disponibilidad a esa hora.",
				FollowUp: "¿Puedo ofrecerle el horario alternativo más cercano?",
				Recovery: "También puedo agregarle a la lista de espera si algo se libera.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "Oh no, that time is already taken!",
				FollowUp: "I do have some great nearby options — want to hear them?",
				Recovery: "And I can pop you on the waitlist too, just in case.",
			},
			LangES: {
				Initial:  "¡Ay no, esa hora ya está ocupada!",
				FollowUp: "Tengo buenas opciones cercanas — ¿quiere escucharlas?",
				Recovery: "Y también puedo ponerle en la lista de espera, por si acaso.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Ah, that slot's taken.",
				FollowUp: "Want me to check what's open around then?",
				Recovery: "I can throw you on the waitlist too if you like.",
			},
			LangES: {
				Initial:  "Ah, ese horario está ocupado.",
				FollowUp: "¿Quieres que revise qué hay libre cerca de esa hora?",
				Recovery: "También te puedo poner en la lista de espera si quieres.",
			},
		},
	},
	ErrMissingInfo: {
		"professional": {
			LangEN: {
				Initial:  "I'm sorry, I still need your {field} to proceed.",
				FollowUp: "Could you provide that for me, please?",
				Recovery: "Once I have it, I can complete this right away.",
			},
			LangES: {
				Initial:  "Lo siento, todavía necesito su {field} para continuar.",
				FollowUp: "¿Podría proporcionármelo, por favor?",
				Recovery: "En cuanto lo tenga, puedo completar esto de inmediato.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "Almost there — I just need your {field}!",
				FollowUp: "Could you share that with me?",
				Recovery: "Then we'll have you all set in no time.",
			},
			LangES: {
				Initial:  "Ya casi — ¡solo necesito su {field}!",
				FollowUp: "¿Me lo podría compartir?",
				Recovery: "Y entonces lo tendremos todo listo enseguida.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "One more thing — I need your {field}.",
				FollowUp: "What is it?",
				Recovery: "Then we're good to go.",
			},
			LangES: {
				Initial:  "Una cosa más — necesito tu {field}.",
				FollowUp: "¿Cuál es?",
				Recovery: "Y entonces estamos listos.",
			},
		},
	},
	ErrSystemIssue: {
		"professional": {
			LangEN: {
				Initial:  "I apologize, I'm having a brief technical issue on my end.",
				FollowUp: "Please bear with me for just a moment.",
				Recovery: "Thank you for your patience — let's continue.",
			},
			LangES: {
				Initial:  "Le pido disculpas, tengo un breve problema técnico de mi lado.",
				FollowUp: "Le pido un momento de paciencia, por favor.",
				Recovery: "Gracias por su paciencia — continuemos.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "Oops — something hiccuped on my end, sorry about that!",
				FollowUp: "Give me just a second to sort it out.",
				Recovery: "Okay, all good — thanks for hanging in there!",
			},
			LangES: {
				Initial:  "¡Uy — algo falló de mi lado, perdón por eso!",
				FollowUp: "Deme solo un segundo para arreglarlo.",
				Recovery: "Listo, todo bien — ¡gracias por esperar!",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Hang on, tech hiccup on my side.",
				FollowUp: "One sec while I fix it.",
				Recovery: "Okay, we're back. Where were we?",
			},
			LangES: {
				Initial:  "Espera, un fallito técnico de mi lado.",
				FollowUp: "Un segundo mientras lo arreglo.",
				Recovery: "Listo, ya volvimos. ¿En qué estábamos?",
			},
		},
	},
	ErrOutOfScope: {
		"professional": {
			LangEN: {
				Initial:  "I'm sorry, that's outside what I'm able to help with.",
				FollowUp: "I can take a detailed message for the team.",
				Recovery: "They'll follow up with you as soon as possible.",
			},
			LangES: {
				Initial:  "Lo siento, eso está fuera de lo que puedo atender.",
				FollowUp: "Puedo tomar un mensaje detallado para el equipo.",
				Recovery: "Ellos le darán seguimiento lo antes posible.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "That's a great question, but it's a bit beyond me!",
				FollowUp: "I'd love to take a message so the right person can help.",
				Recovery: "They'll get back to you really soon.",
			},
			LangES: {
				Initial:  "¡Es una buena pregunta, pero va un poco más allá de mí!",
				FollowUp: "Con gusto tomo un mensaje para que le ayude la persona indicada.",
				Recovery: "Le responderán muy pronto.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Honestly, that one's above my pay grade.",
				FollowUp: "Want me to pass it along to the team?",
				Recovery: "They'll get back to you quick.",
			},
			LangES: {
				Initial:  "La verdad, eso me queda grande.",
				FollowUp: "¿Quieres que se lo pase al equipo?",
				Recovery: "Te responderán rápido.",
			},
		},
	},
	ErrTransferFailed: {
		"professional": {
			LangEN: {
				Initial:  "I apologize, I wasn't able to complete the transfer.",
				FollowUp: "May I take a message instead?",
				Recovery: "I'll make sure it reaches the right person promptly.",
			},
			LangES: {
				Initial:  "Le pido disculpas, no pude completar la transferencia.",
				FollowUp: "¿Puedo tomar un mensaje en su lugar?",
				Recovery: "Me aseguraré de que llegue a la persona indicada de inmediato.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "Hmm, the transfer didn't go through — I'm sorry!",
				FollowUp: "How about I take a message for you instead?",
				Recovery: "I'll make sure they get it right away.",
			},
			LangES: {
				Initial:  "Mmm, la transferencia no funcionó — ¡lo siento!",
				FollowUp: "¿Qué tal si mejor tomo un mensaje?",
				Recovery: "Me aseguraré de que lo reciban de inmediato.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "The transfer didn't work, sorry about that.",
				FollowUp: "Want to leave a message instead?",
				Recovery: "I'll get it to them right away.",
			},
			LangES: {
				Initial:  "La transferencia no funcionó, perdón.",
				FollowUp: "¿Quieres dejar un mensaje mejor?",
				Recovery: "Se lo haré llegar de inmediato.",
			},
		},
	},
	ErrBookingConflict: {
		"professional": {
			LangEN: {
				Initial:  "I'm sorry, that time was just booked by another caller.",
				FollowUp: "May I offer you the next available opening?",
				Recovery: "I'll secure it for you as soon as you confirm.",
			},
			LangES: {
				Initial:  "Lo siento, otro cliente acaba de reservar esa hora.",
				FollowUp: "¿Puedo ofrecerle el siguiente horario disponible?",
				Recovery: "Se lo aseguro en cuanto me confirme.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "Oh no — someone just grabbed that exact slot!",
				FollowUp: "Let me find you the next best time.",
				Recovery: "I'll lock it in the moment you say yes.",
			},
			LangES: {
				Initial:  "¡Ay no — alguien acaba de tomar justo ese horario!",
				FollowUp: "Déjeme buscarle la siguiente mejor hora.",
				Recovery: "Lo aparto en cuanto me diga que sí.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Bad luck — someone just took that slot.",
				FollowUp: "Want the next one that's open?",
				Recovery: "Say the word and it's yours.",
			},
			LangES: {
				Initial:  "Mala suerte — alguien acaba de tomar ese horario.",
				FollowUp: "¿Quieres el siguiente que esté libre?",
				Recovery: "Dime y es tuyo.",
			},
		},
	},
	ErrPaymentQuestion: {
		"professional": {
			LangEN: {
				Initial:  "I'm sorry, I'm not able to process or discuss payment details.",
				FollowUp: "I can have someone from the office call you about billing.",
				Recovery: "Is there anything else I can help you with in the meantime?",
			},
			LangES: {
				Initial:  "Lo siento, no puedo procesar ni hablar de detalles de pago.",
				FollowUp: "Puedo pedir que alguien de la oficina le llame sobre facturación.",
				Recovery: "¿Hay algo más en lo que pueda ayudarle mientras tanto?",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "I wish I could help with that, but payments aren't something I can handle!",
				FollowUp: "I'll have the office reach out about billing, okay?",
				Recovery: "Anything else I can do for you today?",
			},
			LangES: {
				Initial:  "¡Me encantaría ayudar, pero los pagos no son algo que yo pueda manejar!",
				FollowUp: "Haré que la oficina le contacte sobre facturación, ¿de acuerdo?",
				Recovery: "¿Algo más que pueda hacer por usted hoy?",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Payments aren't my department, sorry.",
				FollowUp: "I'll have the office call you about billing.",
				Recovery: "Anything else you need?",
			},
			LangES: {
				Initial:  "Los pagos no son lo mío, perdón.",
				FollowUp: "Haré que la oficina te llame sobre facturación.",
				Recovery: "¿Algo más que necesites?",
			},
		},
	},
	ErrAfterHours: {
		"professional": {
			LangEN: {
				Initial:  "Thank you for calling — the office is currently closed.",
				FollowUp: "I can take a message or book you for the next business day.",
				Recovery: "Which would you prefer?",
			},
			LangES: {
				Initial:  "Gracias por llamar — la oficina está cerrada en este momento.",
				FollowUp: "Puedo tomar un mensaje o agendarle para el próximo día hábil.",
				Recovery: "¿Qué prefiere?",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "Thanks so much for calling! We're closed right now.",
				FollowUp: "I can still take a message or get you booked for when we open.",
				Recovery: "What sounds good?",
			},
			LangES: {
				Initial:  "¡Muchas gracias por llamar! Estamos cerrados en este momento.",
				FollowUp: "Aún puedo tomar un mensaje o agendarle para cuando abramos.",
				Recovery: "¿Qué le parece mejor?",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Hey, thanks for calling — we're closed at the moment.",
				FollowUp: "I can take a message or set you up for when we're back.",
				Recovery: "What works for you?",
			},
			LangES: {
				Initial:  "Hola, gracias por llamar — estamos cerrados ahorita.",
				FollowUp: "Puedo tomar un mensaje o agendarte para cuando volvamos.",
				Recovery: "¿Qué te funciona?",
			},
		},
	},
	ErrCallerUnclearName: {
		"professional": {
			LangEN: {
				Initial:  "I apologize, I didn't catch your name clearly.",
				FollowUp: "Could you spell it for me, please?",
				Recovery: "Thank you — I want your records to be accurate.",
			},
			LangES: {
				Initial:  "Le pido disculpas, no escuché bien su nombre.",
				FollowUp: "¿Podría deletreármelo, por favor?",
				Recovery: "Gracias — quiero que sus datos queden correctos.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "I'm so sorry — I didn't quite get your name!",
				FollowUp: "Would you mind spelling it out for me?",
				Recovery: "Perfect, I want to make sure we get it just right.",
			},
			LangES: {
				Initial:  "¡Perdón — no entendí bien su nombre!",
				FollowUp: "¿Le importaría deletreármelo?",
				Recovery: "Perfecto, quiero asegurarme de que quede bien.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Sorry, I missed your name.",
				FollowUp: "Can you spell it for me?",
				Recovery: "Got it, thanks.",
			},
			LangES: {
				Initial:  "Perdón, no capté tu nombre.",
				FollowUp: "¿Me lo deletreas?",
				Recovery: "Listo, gracias.",
			},
		},
	},
	ErrRepeatedFailure: {
		"professional": {
			LangEN: {
				Initial:  "I sincerely apologize — I'm clearly having trouble assisting you properly.",
				FollowUp: "Let me take your name and number so a team member can call you back directly.",
				Recovery: "You'll hear from someone shortly; thank you for your patience.",
			},
			LangES: {
				Initial:  "Le pido sinceras disculpas — claramente estoy teniendo problemas para atenderle bien.",
				FollowUp: "Permítame tomar su nombre y número para que un miembro del equipo le llame directamente.",
				Recovery: "Alguien le contactará en breve; gracias por su paciencia.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "I'm so sorry — I'm really not doing a great job here!",
				FollowUp: "Let me grab your name and number so a real person can call you right back.",
				Recovery: "Someone will reach out super soon, I promise.",
			},
			LangES: {
				Initial:  "¡Lo siento mucho — de verdad no lo estoy haciendo bien!",
				FollowUp: "Déjeme anotar su nombre y número para que una persona le llame enseguida.",
				Recovery: "Alguien le contactará muy pronto, se lo prometo.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Okay, I'm striking out here — my bad.",
				FollowUp: "Give me your name and number and someone will call you back.",
				Recovery: "You'll hear from a human soon.",
			},
			LangES: {
				Initial:  "Okay, no estoy dando una — perdón.",
				FollowUp: "Dame tu nombre y número y alguien te llamará.",
				Recovery: "Pronto te contactará una persona.",
			},
		},
	},
	ErrLanguageBarrier: {
		"professional": {
			LangEN: {
				Initial:  "I apologize for the difficulty understanding each other.",
				FollowUp: "I can continue in Spanish if that would be more comfortable.",
				Recovery: "Please let me know which language you prefer.",
			},
			LangES: {
				Initial:  "Le pido disculpas por la dificultad para entendernos.",
				FollowUp: "Puedo continuar en inglés si le resulta más cómodo.",
				Recovery: "Por favor, dígame qué idioma prefiere.",
			},
		},
		"friendly": {
			LangEN: {
				Initial:  "I'm sorry we're having a little trouble understanding each other!",
				FollowUp: "Would Spanish be easier for you? I'm happy to switch.",
				Recovery: "Whatever is most comfortable for you works for me.",
			},
			LangES: {
				Initial:  "¡Perdón por la pequeña dificultad para entendernos!",
				FollowUp: "¿Le sería más fácil el inglés? Con gusto cambio.",
				Recovery: "Lo que le resulte más cómodo está bien para mí.",
			},
		},
		"casual": {
			LangEN: {
				Initial:  "Sorry, we're getting a bit crossed up.",
				FollowUp: "Want to switch to Spanish?",
				Recovery: "Whatever's easiest for you.",
			},
			LangES: {
				Initial:  "Perdón, nos estamos enredando un poco.",
				FollowUp: "¿Quieres cambiar a inglés?",
				Recovery: "Lo que te sea más fácil.",
			},
		},
	},
}
