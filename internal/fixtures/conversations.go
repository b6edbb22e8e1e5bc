package fixtures

// Queue IDs referenced by TestDetailsResults.
const (
	TestQueueBilling = "99999999-9999-9999-9999-999999999999"
	TestQueueSales   = "88888888-8888-8888-8888-888888888888"
)

// TestDetailsResults is a fulfilled details job result page with two voice
// conversations in the billing queue and one chat in the sales queue.
const TestDetailsResults = `{
	"conversations": [
		{
			"conversationId": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
			"conversationStart": "2024-01-02T10:00:00Z",
			"conversationEnd": "2024-01-02T10:07:30Z",
			"originatingDirection": "inbound",
			"participants": [
				{
					"purpose": "customer",
					"sessions": [
						{
							"sessionId": "s-1",
							"mediaType": "voice",
							"ani": "tel:+15550100",
							"segments": [
								{"segmentType": "interact", "queueId": "99999999-9999-9999-9999-999999999999", "wrapUpCode": "BILLING"}
							]
						}
					]
				}
			]
		},
		{
			"conversationId": "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb",
			"conversationStart": "2024-01-02T11:00:00Z",
			"conversationEnd": "2024-01-02T11:02:00Z",
			"originatingDirection": "inbound",
			"participants": [
				{
					"purpose": "customer",
					"sessions": [
						{
							"sessionId": "s-2",
							"mediaType": "voice",
							"segments": [
								{"segmentType": "interact", "queueId": "99999999-9999-9999-9999-999999999999", "wrapUpCode": "BILLING"}
							]
						}
					]
				}
			]
		},
		{
			"conversationId": "dddddddd-dddd-dddd-dddd-dddddddddddd",
			"conversationStart": "2024-01-02T12:00:00Z",
			"conversationEnd": "2024-01-02T12:20:00Z",
			"originatingDirection": "outbound",
			"participants": [
				{
					"purpose": "customer",
					"sessions": [
						{
							"sessionId": "s-3",
							"mediaType": "chat",
							"segments": [
								{"segmentType": "interact", "queueId": "88888888-8888-8888-8888-888888888888", "wrapUpCode": "SALES"}
							]
						}
					]
				}
			]
		}
	]
}`
