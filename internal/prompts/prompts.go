package prompts

// QueryRewritePrompt compresses a free-form question into a 1-3 word/phrase
// retrieval query carrying the question's Five Ws intent. The question text
// is appended after the prompt.
const QueryRewritePrompt = `Extract the core broad keywords from this query as a 1-3 word/phrase with the Five Ws context (Example: 'what medicine should I take' → 'what medicine' or 'how often should I take my medicine' → 'when take medicine' or 'what are some side effects of ___' → 'side effects' or 'what is the purpose of the medication' → 'medication purpose'). Query: `

// QuizPrompt asks for a five-question patient quiz over a telehealth
// transcript. The transcript text is appended after the prompt.
const QuizPrompt = `Generate a 5 question quiz about important information to remember from the following telehealth transcript. The patient will be taking the quiz. `
