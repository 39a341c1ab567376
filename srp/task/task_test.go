package task_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/srp/task"
)

func Test_PageNavigationController_Narrates(t *testing.T) {
	// arrange
	var out bytes.Buffer
	controller := task.NewPageNavigationController(&out)
	page := task.NewPage()

	// act
	controller.NavigateTo(page)
	controller.NavigateToName("home")
	controller.ScrollToElement(task.WebElement{Selector: "#footer"})
	controller.Close(page)

	// assert
	assert.Equal(t,
		"Navigating to page "+page.String()+"\n"+
			"Navigating to home\n"+
			"Scrolling to element WebElement(#footer)\n"+
			"Closing page "+page.String()+"\n",
		out.String(),
	)
}

func Test_PageNavigationController_Refresh_LooksUpCurrentPage(t *testing.T) {
	var out bytes.Buffer
	controller := task.NewPageNavigationController(&out)

	controller.Refresh()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Getting current page", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Refreshing the page Page("))
}

func Test_PageNavigationController_IsElementPresentOnCurrentPage(t *testing.T) {
	var out bytes.Buffer
	controller := task.NewPageNavigationController(&out)

	present := controller.IsElementPresentOnCurrentPage(task.WebElement{Selector: "#login"})

	assert.False(t, present)
	assert.Contains(t, out.String(), "Getting current page\n")
	assert.Contains(t, out.String(), "Checking if WebElement(#login) element is present on Page(")
}

func Test_NewPage_HasUniqueIDs(t *testing.T) {
	assert.NotEqual(t, task.NewPage().ID, task.NewPage().ID)
}
