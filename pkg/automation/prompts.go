package automation

// Marker the classification prompt asks the model to emit when an email
// should be sent.
const emailMarker = "[EMAIL]"

// classificationPrompt is bound to the composed state. It can be replaced
// with the EMAIL_EVALUATION_PROMPT setting.
const classificationPrompt = `<conversation>
Latest message: {{message.content.text}}
Earlier messages:
{{recentMessages}}
</conversation>

<agent>
Name: {{agentName}}
About: {{bio}}
Interests: {{topics}}
</agent>

<task>
Decide whether this conversation now contains enough concrete, quotable
information to brief the agent's owner by email.

Look for:
- a stated role, company or project
- specific technical claims, numbers or requirements
- an explicit wish to collaborate or follow up

Quote the supporting phrases inside <quotes> tags, then answer with exactly one line:
[EMAIL] - <one sentence reason>
[SKIP] - <one sentence reason>

Judge only what is quoted. Do not infer details that were not said.
</task>
`

// formattingPrompt is bound to the state enhanced with user information.
const formattingPrompt = `<conversation>
Sender: {{userInfo.displayName}} ({{platform}})
Sender name: {{senderName}}
Message: {{messageContent}}
Earlier messages:
{{recentMessages}}
</conversation>

<task>
Write a short briefing email for the agent's owner about this contact.
Quote the facts you rely on inside <quotes> tags first.

Then write the email using EXACTLY these headings, each on its own line:

Subject: <specific title naming the person, role or company>

Background:
<two or three sentences on who they are>

Key Points:
• <three to five points about what they want or offer>

Technical Details:
• <technical detail, only if stated>

Next Steps:
1. <first action>
2. <second action>

Leave out Technical Details or Next Steps when nothing supports them.
Separate sections with a blank line. State only what the quotes support.
</task>
`
