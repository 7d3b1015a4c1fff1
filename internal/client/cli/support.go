package cli

import "context"

const msgSupportThanks = "Thanks! We'll reply soon."

// Support shows the support form. Messages are not sent anywhere.
func (a *App) Support(ctx context.Context) error {
	a.page = PageSupport

	if _, err := getSimpleText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if _, err := getSimpleText(a.reader, "Message", a.out); err != nil {
		return err
	}

	a.say(msgSupportThanks)
	return nil
}
