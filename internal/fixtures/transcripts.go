package fixtures

// TestTranscriptBundle is a transcript payload of a short billing call with
// an IVR greeting, one agent and one customer, and sparse sentiment
// annotations.
const TestTranscriptBundle = `{
	"organizationId": "6a7c1b0e-0000-0000-0000-000000000000",
	"conversationId": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	"communicationId": "cccccccc-cccc-cccc-cccc-cccccccccccc",
	"mediaType": "voice",
	"conversationStartTime": 1700000000000,
	"startTime": 1700000000000,
	"participants": [
		{
			"participantPurpose": "ivr",
			"startTimeMs": 1700000000000,
			"endTimeMs": 1700000015000
		},
		{
			"participantPurpose": "agent",
			"userId": "11111111-1111-1111-1111-111111111111",
			"startTimeMs": 1700000015000,
			"endTimeMs": 1700000120000
		},
		{
			"participantPurpose": "external",
			"ani": "tel:+15550100",
			"startTimeMs": 1700000000000,
			"endTimeMs": 1700000120000
		}
	],
	"transcripts": [
		{
			"transcriptId": "tttttttt-tttt-tttt-tttt-tttttttttttt",
			"language": "en-us",
			"phrases": [
				{
					"phraseIndex": 0,
					"participantPurpose": "internal",
					"text": "thank you for calling acme",
					"decoratedText": "Thank you for calling Acme.",
					"startTimeMs": 1700000002000,
					"type": "noun_phrase"
				},
				{
					"phraseIndex": 1,
					"participantPurpose": "external",
					"text": "hi i need help with my invoice",
					"decoratedText": "Hi, I need help with my invoice.",
					"startTimeMs": 1700000018000,
					"type": "noun_phrase"
				},
				{
					"phraseIndex": 2,
					"participantPurpose": "internal",
					"text": "of course let me pull that up",
					"decoratedText": "Of course, let me pull that up.",
					"startTimeMs": 1700000021000,
					"type": "noun_phrase"
				},
				{
					"phraseIndex": 3,
					"participantPurpose": "external",
					"text": "thanks that fixed it",
					"decoratedText": "Thanks, that fixed it!",
					"startTimeMs": 1700000095000,
					"type": "noun_phrase"
				}
			],
			"analytics": {
				"sentiment": [
					{"phraseIndex": 1, "sentiment": -1},
					{"phraseIndex": 3, "sentiment": 1}
				]
			}
		}
	]
}`
