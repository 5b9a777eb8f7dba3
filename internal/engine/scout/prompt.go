package scout

// LLM prompt templates — data only, no logic.

// extractEmailPrompt asks for a bare address or an explicit "None".
// Args: description text.
const extractEmailPrompt = `Extract the contact email address from the channel description below.
Reply with ONLY the address — no explanation, no punctuation.
If there is no email address, reply exactly: None

Description:
%s`

// suspectAdsPrompt asks for the indices of likely undisclosed sponsorships.
// The reply is parsed leniently (every integer in the text counts), so the
// format instruction is best-effort. Args: numbered video list.
const suspectAdsPrompt = `Below is a numbered list of recent videos from one creator, with title and a description excerpt.
Reply with ONLY the numbers of videos that look like sponsorships or paid collaborations, comma-separated (e.g. 0, 3, 7).
If none look sponsored, reply exactly: None

%s`
