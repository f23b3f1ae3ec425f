// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// categoryOrder fixes the display order of categories in help and
// completion. Every catalog entry's Category appears here.
var categoryOrder = []string{
	"Handshake",
	"Achievements",
	"Builds",
	"Uploads",
	"Settings",
	"AI",
	"FC2T Projects",
	"Member Management",
	"Perks",
	"Scripts",
	"Software",
	"Forum",
}

// catalog is the static command table. Iteration order is significant:
// completion and help list commands in this order. NewRegistry copies the
// entries, so the table itself is never handed out.
var catalog = []Descriptor{
	{
		Name:        "getHandshake",
		Description: "Retrieves a license key using a temporary unique code.",
		Category:    "Handshake",
		Params: []ParamSpec{
			{Name: "token", Type: TypeString, Required: true},
		},
		Example: "getHandshake --token UNIQUE_CODE_FROM_AUTHORIZE",
	},
	{
		Name:        "authorizeHandshake",
		Description: "Creates a temporary unique code for your license key on the server.",
		Category:    "Handshake",
		Example:     "authorizeHandshake",
	},
	{
		Name:        "terminateHandshake",
		Description: "Forcefully terminates your handshake.",
		Category:    "Handshake",
		Params: []ParamSpec{
			{Name: "token", Type: TypeString, Required: true},
		},
		Example: "terminateHandshake --token UNIQUE_CODE_FROM_AUTHORIZE",
	},
	{
		Name:        "getAchievements",
		Description: "Lists all available achievements.",
		Category:    "Achievements",
		Example:     "getAchievements",
	},
	{
		Name:        "redeemAchievements",
		Description: "Redeems achievement data. Requires POST data.",
		Category:    "Achievements",
		Params: []ParamSpec{
			{Name: "value", Type: TypeString, Required: true, Post: true},
		},
		Example: `redeemAchievements --value "<achievements.dat content>"`,
	},
	{
		Name:        "createBuild",
		Description: "Creates a new build or updates your current build.",
		Category:    "Builds",
		Params: []ParamSpec{
			{Name: "tag", Type: TypeString},
			{Name: "private", Type: TypeString},
		},
		Example: "createBuild --tag mybuild --private typedef",
	},
	{
		Name:        "deleteBuild",
		Description: "Wipes your current build.",
		Category:    "Builds",
		Params: []ParamSpec{
			{Name: "tag", Type: TypeString},
		},
		Example: "deleteBuild --tag mybuild",
	},
	{
		Name:        "upload",
		Description: "Uploads a file to i.constelia.ai.",
		Category:    "Uploads",
		Params: []ParamSpec{
			{Name: "expire", Type: TypeInt},
			{Name: "no_scramble", Type: TypeBool},
		},
		Example: "upload --file /path/to/your/file.txt --expire 60",
	},
	{
		Name:        "setUpload",
		Description: "Changes the URL of an i.constelia.ai upload.",
		Category:    "Uploads",
		Params: []ParamSpec{
			{Name: "old_url", Type: TypeString, Required: true},
			{Name: "new_url", Type: TypeString, Required: true},
		},
		Example: "setUpload --old_url https://i.constelia.ai/old --new_url https://i.constelia.ai/new",
	},
	{
		Name:        "setLanguage",
		Description: "Sets your language.",
		Category:    "Settings",
		Params: []ParamSpec{
			{Name: "lang", Type: TypeString},
		},
		Example: "setLanguage --lang en",
	},
	{
		Name:        "heyConstelia",
		Description: "Communicates with Constelia's trained AI.",
		Category:    "AI",
		Params: []ParamSpec{
			{Name: "message", Type: TypeString, Required: true},
		},
		Example: `heyConstelia --message "Hello Constelia"`,
	},
	{
		Name:        "teachConstelia",
		Description: "Teaches Constelia's trained AI custom information. Requires POST data.",
		Category:    "AI",
		Params: []ParamSpec{
			{Name: "data", Type: TypeString, Required: true, Post: true},
			{Name: "info", Type: TypeBool},
			{Name: "wipe", Type: TypeBool},
		},
		Example: `teachConstelia --data "I love green apples"`,
	},
	{
		Name:        "getFC2TProjects",
		Description: "Gets all FC2T projects.",
		Category:    "FC2T Projects",
		Example:     "getFC2TProjects",
	},
	{
		Name:        "getFC2TProject",
		Description: "Gets an FC2T project by its ID.",
		Category:    "FC2T Projects",
		Params: []ParamSpec{
			{Name: "id", Type: TypeInt, Required: true},
		},
		Example: "getFC2TProject --id 1",
	},
	{
		Name:        "toggleProjectStatus",
		Description: "Enables/Disables an FC2T project.",
		Category:    "FC2T Projects",
		Params: []ParamSpec{
			{Name: "id", Type: TypeInt, Required: true},
		},
		Example: "toggleProjectStatus --id 1",
	},
	{
		Name:        "setMemberProjects",
		Description: "Enables/Disables multiple FC2T projects.",
		Category:    "FC2T Projects",
		Params: []ParamSpec{
			{Name: "projects", Type: TypeList, Required: true},
		},
		Example: "setMemberProjects --projects [1,2,3]",
	},
	{
		Name:        "sendCommand",
		Description: "Sends commands to the Member's Panel and gets the result back.",
		Category:    "Forum",
		Params: []ParamSpec{
			{Name: "command", Type: TypeString, Required: true},
		},
		Example: "sendCommand --command session",
	},
	{
		Name:        "getBuilds",
		Description: "Lists all available builds.",
		Category:    "Builds",
		Example:     "getBuilds",
	},
	{
		Name:        "deleteMinecraftWhitelist",
		Description: "Removes a member's entry from the Minecraft whitelist.",
		Category:    "Member Management",
		Params: []ParamSpec{
			{Name: "owner", Type: TypeString, Required: true},
		},
		Example: "deleteMinecraftWhitelist --owner typedef",
	},
	{
		Name:        "respecPerks",
		Description: "Removes all purchased perks at a cost of 3000 XP.",
		Category:    "Perks",
		Example:     "respecPerks",
	},
	{
		Name:        "listPerks",
		Description: "Lists all perks in the system.",
		Category:    "Perks",
		Example:     "listPerks",
	},
	{
		Name:        "buyPerk",
		Description: "Consumes a perk point to purchase a perk.",
		Category:    "Perks",
		Params: []ParamSpec{
			{Name: "id", Type: TypeInt, Required: true},
		},
		Example: "buyPerk --id 1",
	},
	{
		Name:        "changeVenus",
		Description: "Manages Venus perk related actions (status, request, withdraw).",
		Category:    "Perks",
		Params: []ParamSpec{
			{Name: "status", Type: TypeBool},
			{Name: "request", Type: TypeString},
			{Name: "withdraw", Type: TypeBool},
		},
		Example: "changeVenus --request MyBestFriend1337",
	},
	{
		Name:        "rollLoot",
		Description: "Rolls for loot related to the Abundance of Jupiter perk.",
		Category:    "Perks",
		Params: []ParamSpec{
			{Name: "sim", Type: TypeBool},
		},
		Example: "rollLoot --sim",
	},
	{
		Name:        "resetConfiguration",
		Description: "Safely deletes/resets the cloud configuration of a specific solution.",
		Category:    "Settings",
		Example:     "resetConfiguration",
	},
	{
		Name:        "hideSteamAccount",
		Description: "Hides a Steam account from appearing in the Member's Panel.",
		Category:    "Member Management",
		Params: []ParamSpec{
			{Name: "name", Type: TypeString, Required: true},
		},
		Example: "hideSteamAccount --name mysteamloginusername",
	},
	{
		Name:        "showSteamAccount",
		Description: "Allows a previously hidden Steam account to show.",
		Category:    "Member Management",
		Params: []ParamSpec{
			{Name: "name", Type: TypeString, Required: true},
		},
		Example: "showSteamAccount --name mysteamloginusername",
	},
	{
		Name:        "setKeys",
		Description: "Sets your linking and panic/stop key.",
		Category:    "Settings",
		Params: []ParamSpec{
			{Name: "link", Type: TypeInt},
			{Name: "stop", Type: TypeInt},
		},
		Example: "setKeys --link 122",
	},
	{
		Name:        "getSolution",
		Description: "Gets the raw executable for a constelia.ai solution.",
		Category:    "Software",
		Params: []ParamSpec{
			{Name: "software", Type: TypeString, Required: true},
			{Name: "os", Type: TypeString},
		},
		Example: "getSolution --software universe4 --os linux",
	},
	{
		Name:        "setProtection",
		Description: "Sets the protection method of the FC2 solution.",
		Category:    "Settings",
		Params: []ParamSpec{
			{Name: "protection", Type: TypeInt, Required: true},
		},
		Example: "setProtection --protection 1",
	},
	{
		Name:        "setMemberScripts",
		Description: "Sets multiple scripts on a license key.",
		Category:    "Scripts",
		Params: []ParamSpec{
			{Name: "scripts", Type: TypeList, Required: true},
		},
		Example: "setMemberScripts --scripts [140,141]",
	},
	{
		Name:        "getDivinityChart",
		Description: "Gets the divinity chart in JSON format.",
		Category:    "Perks",
		Params: []ParamSpec{
			{Name: "top5", Type: TypeBool},
		},
		Example: "getDivinityChart --top5",
	},
	{
		Name:        "getMinecraftWhitelist",
		Description: "Lists all members who are allowed on the Minecraft community server.",
		Category:    "Member Management",
		Example:     "getMinecraftWhitelist",
	},
	{
		Name:        "addMinecraftWhitelist",
		Description: "Adds/Updates a member to the Minecraft community server.",
		Category:    "Member Management",
		Params: []ParamSpec{
			{Name: "name", Type: TypeString, Required: true},
			{Name: "owner", Type: TypeString, Required: true},
			{Name: "friend", Type: TypeBool},
		},
		Example: "addMinecraftWhitelist --name minecraftusername --owner typedef",
	},
	{
		Name:        "getMemberAsBuddy",
		Description: "Returns member information for a buddy or VIP.",
		Category:    "Member Management",
		Params: []ParamSpec{
			{Name: "name", Type: TypeString, Required: true},
		},
		Example: "getMemberAsBuddy --name johnnyappleseed",
	},
	{
		Name:        "toggleScriptStatus",
		Description: "Toggles a script on/off.",
		Category:    "Scripts",
		Params: []ParamSpec{
			{Name: "id", Type: TypeInt, Required: true},
		},
		Example: "toggleScriptStatus --id 130",
	},
	{
		Name:        "getSoftware",
		Description: "Gets information of a constelia.ai software.",
		Category:    "Software",
		Params: []ParamSpec{
			{Name: "name", Type: TypeString, Required: true},
			{Name: "scripts", Type: TypeBool},
			{Name: "checksum", Type: TypeBool},
		},
		Example: "getSoftware --name Constellation4 --scripts",
	},
	{
		Name:        "getAllSoftware",
		Description: "Gets all information of all constelia.ai software.",
		Category:    "Software",
		Example:     "getAllSoftware",
	},
	{
		Name:        "getForumPosts",
		Description: "Gets the latest forum posts.",
		Category:    "Forum",
		Params: []ParamSpec{
			{Name: "count", Type: TypeInt, Required: true},
		},
		Example: "getForumPosts --count 10",
	},
	{
		Name:        "getConfiguration",
		Description: "Gets your stored cloud configuration.",
		Category:    "Forum",
		Example:     "getConfiguration",
	},
	{
		Name:        "setConfiguration",
		Description: "Sets your cloud configuration. Requires POST data.",
		Category:    "Forum",
		Params: []ParamSpec{
			{Name: "value", Type: TypeString, Required: true, Post: true},
		},
		Example: `setConfiguration --value "<json_config_data>"`,
	},
	{
		Name:        "getScript",
		Description: "Gets information about a script.",
		Category:    "Scripts",
		Params: []ParamSpec{
			{Name: "id", Type: TypeInt, Required: true},
			{Name: "source", Type: TypeBool},
			{Name: "needs_sync", Type: TypeBool},
			{Name: "needs_update", Type: TypeBool},
		},
		Example: "getScript --id 150 --source",
	},
	{
		Name:        "getAllScripts",
		Description: "Gets all scripts.",
		Category:    "Scripts",
		Example:     "getAllScripts",
	},
	{
		Name:        "updateScript",
		Description: "Updates a script you own or are a team member of. Requires POST data.",
		Category:    "Scripts",
		Params: []ParamSpec{
			{Name: "script", Type: TypeString, Required: true, Post: true},
			{Name: "content", Type: TypeString, Required: true, Post: true},
			{Name: "notes", Type: TypeString, Required: true, Post: true},
			{Name: "categories", Type: TypeList, Post: true},
		},
		Example: `updateScript --script <script_id> --content "new code" --notes "bug fix" --categories [0,1]`,
	},
	{
		Name:        "getMember",
		Description: "Gets information about your membership.",
		Category:    "Member Management",
		Params: []ParamSpec{
			{Name: "bans", Type: TypeBool},
			{Name: "history", Type: TypeBool},
			{Name: "scripts", Type: TypeBool},
			{Name: "simple", Type: TypeBool},
			{Name: "private", Type: TypeBool},
			{Name: "xp", Type: TypeBool},
			{Name: "rolls", Type: TypeBool},
			{Name: "fc2t", Type: TypeBool},
			{Name: "hashes", Type: TypeBool},
			{Name: "uploads", Type: TypeBool},
			{Name: "bonks", Type: TypeBool},
			{Name: "achievements", Type: TypeBool},
		},
		Example: "getMember --scripts --history --bans",
	},
}
