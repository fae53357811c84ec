package drilldown

// ShowInfo puts message in the detail panel's info banner. It does nothing
// when the detail content cannot show banners.
func (c *Controller) ShowInfo(message string) {
	if n, ok := c.detail.(DetailNotifier); ok {
		n.ShowInfo(message)
	}
}

func (c *Controller) ClearInfo() {
	if n, ok := c.detail.(DetailNotifier); ok {
		n.ClearInfo()
	}
}

// ShowWarning puts message in the detail panel's warning banner.
func (c *Controller) ShowWarning(message string) {
	if n, ok := c.detail.(DetailNotifier); ok {
		n.ShowWarning(message)
	}
}

func (c *Controller) ClearWarning() {
	if n, ok := c.detail.(DetailNotifier); ok {
		n.ClearWarning()
	}
}

// AddTab adds a tab to the stock detail panel. With custom detail content it
// has no effect and reports false.
func (c *Controller) AddTab(name string, content any) bool {
	tabs, ok := c.detail.(DetailTabs)
	if !ok {
		return false
	}
	tabs.AddTab(name, content)
	return true
}

// RemoveTab removes a tab added with AddTab. With custom detail content it
// has no effect and reports false.
func (c *Controller) RemoveTab(name string) bool {
	tabs, ok := c.detail.(DetailTabs)
	if !ok {
		return false
	}
	tabs.RemoveTab(name)
	return true
}
