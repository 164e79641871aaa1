package app

import "net/http"

// HandleHome renders the home page.
func (a *App) HandleHome(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "home.html", BasePage{ViewCount: a.Views.Next()})
}

// HandleAbout renders the about page.
func (a *App) HandleAbout(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "about.html", BasePage{ViewCount: a.Views.Next()})
}

// HandleContact renders the contact page.
func (a *App) HandleContact(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "contact.html", BasePage{ViewCount: a.Views.Next()})
}

// HandleNotFound renders the 404 page for unmatched routes. The page
// does not display the view counter, so the counter is not touched.
func (a *App) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusNotFound, "404.html", nil)
}

// HandleServerError force-renders the 500 page. Kept routable as a
// diagnostic for checking the error page in a live deployment.
func (a *App) HandleServerError(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusInternalServerError, "500.html", nil)
}
