// Package cli provides the interactive storefront client.
//
// Every REPL command plays the part of one page control: the catalog with
// search, add-to-cart and favorite buttons, the cart page with its favorites
// panel and checkout, the profile page, the support form and the login and
// register forms. Commands are thin: they read input, call the services and
// render the result with the view package.
//
// The cart page is re-rendered whenever the cart service reports a change
// while it is the current page.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
