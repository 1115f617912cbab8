package payment

// Instructions tell the user how to complete a mobile-money payment.
// ShortCode and AppName are method-specific and omitted when empty.
type Instructions struct {
	ShortCode     string   `json:"shortCode,omitempty"`
	AppName       string   `json:"appName,omitempty"`
	Steps         []string `json:"steps"`
	EstimatedTime string   `json:"estimatedTime"`
	SupportPhone  string   `json:"supportPhone"`
}

const supportPhone = "+251-911-123456"

// InstructionsFor returns the payment walkthrough for one of the
// supported Ethiopian mobile-money providers. The caller has already
// validated the method.
func InstructionsFor(method string) Instructions {
	switch method {
	case "telebirr":
		return Instructions{
			ShortCode: "*127#",
			Steps: []string{
				"Dial *127# on your telebirr-registered phone",
				"Select 'Send Money' from the menu",
				"Enter merchant code 600123",
				"Enter the exact amount shown on this page",
				"Confirm with your telebirr PIN",
				"Return here and press 'Verify Payment'",
			},
			EstimatedTime: "2-5 minutes",
			SupportPhone:  supportPhone,
		}
	case "mpesa":
		return Instructions{
			ShortCode: "*150#",
			Steps: []string{
				"Dial *150# on your M-Pesa-registered phone",
				"Select 'Lipa' (Pay)",
				"Enter till number 800456",
				"Enter the exact amount shown on this page",
				"Confirm with your M-Pesa PIN",
				"Return here and press 'Verify Payment'",
			},
			EstimatedTime: "2-5 minutes",
			SupportPhone:  supportPhone,
		}
	case "cbe":
		return Instructions{
			AppName: "CBE Birr",
			Steps: []string{
				"Open the CBE Birr app and sign in",
				"Choose 'Pay Merchant'",
				"Enter merchant ID MATSCI01",
				"Enter the exact amount shown on this page",
				"Authorize the payment",
				"Return here and press 'Verify Payment'",
			},
			EstimatedTime: "3-10 minutes",
			SupportPhone:  supportPhone,
		}
	case "abyssinia":
		return Instructions{
			AppName: "Abyssinia Mobile Banking",
			Steps: []string{
				"Open the Abyssinia mobile banking app",
				"Choose 'Transfer' then 'To Merchant'",
				"Enter merchant account 0123456789",
				"Enter the exact amount shown on this page",
				"Authorize with your PIN or fingerprint",
				"Return here and press 'Verify Payment'",
			},
			EstimatedTime: "3-10 minutes",
			SupportPhone:  supportPhone,
		}
	}
	return Instructions{
		Steps:         []string{"Contact support to complete your payment"},
		EstimatedTime: "unknown",
		SupportPhone:  supportPhone,
	}
}
