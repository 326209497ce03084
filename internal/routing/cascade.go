package routing

// Choice pairs a slug with its display label.
type Choice struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// CategoryCascade holds the sub-types available under a category and
// the issue types available under each sub-type. Issue types are
// descriptive metadata only; Compute never consults them.
type CategoryCascade struct {
	SubTypes   []Choice            `json:"subtypes"`
	IssueTypes map[string][]Choice `json:"issue_types"`
}

// DepartmentChoices lists every selectable department, in form order.
var DepartmentChoices = []string{
	"Police Department",
	"Fire Department",
	"Utilities",
	"City Manager's Office",
	"Health Department",
	"Finance",
	"Public Works",
	"Parks & Recreation",
	"City Clerk",
	"Planning & Zoning",
}

// CategoryChoices lists every selectable category, in form order.
var CategoryChoices = []Choice{
	{Slug: "hardware", Label: "Hardware — Computers, Printers, Devices"},
	{Slug: "software", Label: "Software — Applications, Licenses, OS"},
	{Slug: "network", Label: "Network — Connectivity, WiFi, VPN"},
	{Slug: "email", Label: "Email & Communication"},
	{Slug: "security", Label: "Security — Passwords, Access, Accounts"},
	{Slug: "phone", Label: "Phone / VOIP Systems"},
	{Slug: "server", Label: "Servers & Infrastructure"},
	{Slug: "data", Label: "Data & Reporting"},
}

// PriorityChoices lists the user-facing priority options, least urgent
// first as the form presents them.
var PriorityChoices = []struct {
	Value Priority `json:"value"`
	Label string   `json:"label"`
}{
	{PriorityLow, "Low — Minor issue, no work stoppage"},
	{PriorityMedium, "Medium — Workaround exists, productivity affected"},
	{PriorityHigh, "High — Work is halted, team affected"},
	{PriorityCritical, "Critical — System down, department or city-wide"},
}

// issueCascade is the single source of truth for the three-level
// Category → Sub-Type → Issue Type taxonomy, consumed by the form
// cascade endpoint and submission validation.
var issueCascade = map[string]CategoryCascade{
	"hardware": {
		SubTypes: []Choice{
			{"no_boot", "Not turning on / won't boot"},
			{"slow", "Slow performance / intermittent"},
			{"display", "Display or monitor issue"},
			{"peripheral", "Peripheral device not working"},
			{"complete_outage", "Complete hardware failure"},
		},
		IssueTypes: map[string][]Choice{
			"no_boot": {
				{"power_no_response", "No power — no lights, no fan, no response"},
				{"bios_error", "BIOS or POST error displayed on screen"},
				{"os_wont_load", "Reaches login screen but OS won't finish loading"},
				{"bootloop", "Device restarts repeatedly / bootloop"},
			},
			"slow": {
				{"high_cpu", "Very slow — fan loud, likely high CPU/RAM"},
				{"low_storage", "Low disk space warning shown"},
				{"slow_after_update", "Became slow after a recent update"},
				{"malware_suspected", "Unusual behavior / possible malware"},
			},
			"display": {
				{"no_signal", "Monitor shows 'No Signal' or stays black"},
				{"flickering", "Screen flickering or flashing"},
				{"wrong_resolution", "Wrong resolution / display stretched or cut off"},
				{"dead_pixels", "Dead pixels or visible physical screen damage"},
			},
			"peripheral": {
				{"printer_offline", "Printer shows offline or won't print"},
				{"usb_not_recognized", "USB device not recognized"},
				{"keyboard_mouse", "Keyboard or mouse unresponsive"},
				{"external_drive", "External drive not detected"},
			},
			"complete_outage": {
				{"total_failure", "Device completely unresponsive"},
				{"physical_damage", "Physical damage observed"},
				{"powers_off", "Powers on but immediately shuts off"},
			},
		},
	},
	"software": {
		SubTypes: []Choice{
			{"app_crash", "Application crash or error"},
			{"slow", "Application running slowly"},
			{"no_login", "Cannot log into application"},
			{"new_user", "New install or access needed"},
			{"data_loss", "File or data issue"},
		},
		IssueTypes: map[string][]Choice{
			"app_crash": {
				{"crash_on_launch", "Crashes immediately when opening"},
				{"crash_during_use", "Crashes randomly during normal use"},
				{"error_code", "Specific error code displayed"},
				{"freeze_hang", "Freezes / becomes completely unresponsive"},
			},
			"slow": {
				{"app_loading_slow", "Application takes very long to open"},
				{"browser_slow", "Browser slow, freezing, or crashing"},
				{"print_queue_stuck", "Print queue stuck or printing very slow"},
				{"db_query_slow", "Database or query operations are slow"},
			},
			"no_login": {
				{"license_expired", "License expired or shows as invalid"},
				{"account_locked", "Account locked inside the application"},
				{"not_activated", "Software not activated on this machine"},
				{"wrong_credentials", "Credentials not accepted / access denied"},
			},
			"new_user": {
				{"install_needed", "Software needs to be installed"},
				{"license_needed", "License key or seat needed"},
				{"config_needed", "Software needs configuration for this user"},
				{"access_needed", "User needs access/permissions granted"},
			},
			"data_loss": {
				{"file_missing", "File or folder missing or accidentally deleted"},
				{"file_corrupted", "File opens but data appears corrupted"},
				{"autosave_failed", "Auto-save or backup did not run"},
				{"need_rollback", "Need to restore a previous version of a file"},
			},
		},
	},
	"network": {
		SubTypes: []Choice{
			{"no_internet", "No internet or network access"},
			{"slow_conn", "Slow or unstable connection"},
			{"complete_outage", "Full network outage — multiple users"},
		},
		IssueTypes: map[string][]Choice{
			"no_internet": {
				{"no_connection", "No network connection at all"},
				{"limited_conn", "Limited / intermittent connection"},
				{"dns_failure", "Connected but websites / resources won't load"},
				{"vpn_blocked", "VPN not connecting or being blocked"},
			},
			"slow_conn": {
				{"wifi_weak", "WiFi signal weak in this area"},
				{"vpn_slow", "VPN connected but very slow"},
				{"video_calls_poor", "Video calls or streaming buffering badly"},
				{"bandwidth_limit", "Bandwidth seems throttled or limited"},
			},
			"complete_outage": {
				{"floor_outage", "Entire floor has no network access"},
				{"dept_outage", "Entire department has no network access"},
				{"switch_down", "Network switch or router appears to be down"},
				{"building_outage", "Building-wide network outage"},
			},
		},
	},
	"email": {
		SubTypes: []Choice{
			{"no_login", "Cannot log into email"},
			{"slow", "Email loading slowly or not syncing"},
			{"complete_outage", "Cannot send or receive email"},
			{"new_user", "New mailbox or access needed"},
		},
		IssueTypes: map[string][]Choice{
			"no_login": {
				{"password_issue", "Cannot log in — password not accepted"},
				{"mfa_problem", "Multi-factor authentication not working"},
				{"account_locked", "Email account has been locked"},
				{"profile_missing", "Outlook profile missing or corrupted"},
			},
			"slow": {
				{"inbox_loading", "Inbox taking a long time to load"},
				{"attachments_slow", "Attachments not loading or downloading"},
				{"sync_issue", "Email not syncing across devices"},
				{"search_broken", "Email search not returning results"},
			},
			"complete_outage": {
				{"cannot_send", "Can receive email but cannot send"},
				{"cannot_receive", "Cannot receive any new emails"},
				{"outlook_crash", "Outlook crashes on launch"},
				{"server_conn", "Cannot connect to mail server at all"},
			},
			"new_user": {
				{"new_mailbox", "New email account / mailbox needed"},
				{"shared_mailbox", "Access to a shared mailbox needed"},
				{"distro_list", "Add user to a distribution list"},
				{"signature_setup", "Email signature setup or update needed"},
			},
		},
	},
	"security": {
		SubTypes: []Choice{
			{"no_login", "Locked out of account or system"},
			{"pw_reset", "Password reset needed"},
			{"data_loss", "Suspected security incident"},
			{"new_user", "New account or permissions needed"},
		},
		IssueTypes: map[string][]Choice{
			"no_login": {
				{"account_locked", "Account locked after failed login attempts"},
				{"mfa_lost", "Lost MFA device or authenticator app"},
				{"ad_account", "Active Directory account issue"},
				{"vpn_credentials", "VPN credentials not working"},
			},
			"pw_reset": {
				{"forgot_password", "Forgot password — need reset link"},
				{"expired_password", "Password expired and cannot be changed"},
				{"forced_reset_fail", "Forced to reset but the reset page fails"},
				{"complexity_issue", "Password complexity requirements unclear"},
			},
			"data_loss": {
				{"phishing_email", "Received a suspicious or phishing email"},
				{"unauthorized_access", "Possible unauthorized access to account"},
				{"malware_ransomware", "Malware or ransomware detected/suspected"},
				{"potential_breach", "Potential data breach or leak"},
			},
			"new_user": {
				{"new_employee_account", "New employee account creation needed"},
				{"additional_perms", "Additional permissions or roles needed"},
				{"vpn_setup", "VPN access setup for new user"},
				{"system_access", "Access to a specific system or application"},
			},
		},
	},
	"phone": {
		SubTypes: []Choice{
			{"complete_outage", "Phone completely not working"},
			{"slow", "Call quality issues"},
			{"peripheral", "Headset or phone hardware issue"},
		},
		IssueTypes: map[string][]Choice{
			"complete_outage": {
				{"no_dial_tone", "No dial tone on desk phone"},
				{"phone_dead", "Phone not powering on"},
				{"calls_not_routing", "Calls not routing / going to wrong extension"},
				{"voicemail_issue", "Voicemail system not working"},
			},
			"slow": {
				{"poor_call_quality", "Call quality poor or distorted"},
				{"calls_dropping", "Calls dropping frequently"},
				{"echo_feedback", "Echo or feedback heard during calls"},
				{"call_delay", "Noticeable delay / latency during calls"},
			},
			"peripheral": {
				{"headset_not_working", "Headset not working or not recognized"},
				{"conference_phone", "Conference room phone issue"},
				{"handset_static", "Handset producing static or crackling"},
				{"speakerphone", "Speakerphone not functioning"},
			},
		},
	},
	"server": {
		SubTypes: []Choice{
			{"complete_outage", "Server or service is down"},
			{"slow", "Server performance degraded"},
			{"data_loss", "Data or storage concern"},
		},
		IssueTypes: map[string][]Choice{
			"complete_outage": {
				{"server_unreachable", "Server completely down / unreachable"},
				{"service_down", "Specific service or application unreachable"},
				{"unplanned_downtime", "Unexpected downtime — not scheduled"},
				{"vm_not_starting", "Virtual machine not starting"},
			},
			"slow": {
				{"high_load", "Server showing high CPU or memory load"},
				{"db_slow", "Database queries running very slowly"},
				{"storage_nearly_full", "Server storage nearly full"},
				{"network_latency", "High network latency to this server"},
			},
			"data_loss": {
				{"data_corrupted", "Data on server appears corrupted"},
				{"backup_failed", "Backup job failed or did not run"},
				{"accidental_delete", "Files accidentally deleted from server"},
				{"raid_disk_alert", "RAID array or disk health alert"},
			},
		},
	},
	"data": {
		SubTypes: []Choice{
			{"data_loss", "Report data is incorrect or missing"},
			{"slow", "Reports or dashboards loading slowly"},
			{"app_crash", "Reporting tool crashing or not working"},
		},
		IssueTypes: map[string][]Choice{
			"data_loss": {
				{"report_wrong", "Report showing incorrect or unexpected data"},
				{"data_missing", "Records or entire dataset is missing"},
				{"export_failed", "Data export or download failing"},
				{"import_failed", "Data import or upload failing"},
			},
			"slow": {
				{"report_slow", "Reports taking too long to generate"},
				{"dashboard_slow", "Dashboard not loading or very slow"},
				{"query_timeout", "Query timing out before completing"},
				{"export_slow", "Data export taking excessively long"},
			},
			"app_crash": {
				{"report_tool_crash", "Reporting tool crashing"},
				{"bi_tool_issue", "BI or analytics tool not opening/working"},
				{"connection_lost", "Lost connection to data source"},
				{"scheduled_failed", "Scheduled report not running automatically"},
			},
		},
	},
}

// CascadeFor returns the sub-type and issue-type choices for a
// category, with ok=false for unknown categories.
func CascadeFor(category string) (CategoryCascade, bool) {
	cascade, ok := issueCascade[category]
	return cascade, ok
}

// SubTypesFor returns the sub-type choices for a category, nil when the
// category is unknown.
func SubTypesFor(category string) []Choice {
	cascade, ok := issueCascade[category]
	if !ok {
		return nil
	}
	return append([]Choice(nil), cascade.SubTypes...)
}

// IssueTypesFor returns the issue-type choices for a category/sub-type
// pair, nil when either level is unknown.
func IssueTypesFor(category, subType string) []Choice {
	cascade, ok := issueCascade[category]
	if !ok {
		return nil
	}
	return append([]Choice(nil), cascade.IssueTypes[subType]...)
}

// ValidSubType reports whether the sub-type belongs to the category.
// The empty sub-type is always valid.
func ValidSubType(category, subType string) bool {
	if subType == "" {
		return true
	}
	cascade, ok := issueCascade[category]
	if !ok {
		return false
	}
	for _, choice := range cascade.SubTypes {
		if choice.Slug == subType {
			return true
		}
	}
	return false
}

// ValidIssueType reports whether the issue type belongs to the
// category/sub-type pair. The empty issue type is always valid.
func ValidIssueType(category, subType, issueType string) bool {
	if issueType == "" {
		return true
	}
	for _, choice := range IssueTypesFor(category, subType) {
		if choice.Slug == issueType {
			return true
		}
	}
	return false
}

// AllSubTypeChoices flattens every sub-type across categories, first
// occurrence of a slug wins, in cascade order.
func AllSubTypeChoices() []Choice {
	seen := map[string]struct{}{}
	var out []Choice
	for _, category := range CategoryChoices {
		for _, choice := range issueCascade[category.Slug].SubTypes {
			if _, dup := seen[choice.Slug]; dup {
				continue
			}
			seen[choice.Slug] = struct{}{}
			out = append(out, choice)
		}
	}
	return out
}
