package roster

// starPlayers is the curated 2025-26 reference set. Keyed by canonical name.
var starPlayers = map[string]Entry{
	// ── SUPERSTAR (10) ── National POTY candidates / Consensus All-Americans
	"Cooper Flagg":         {Team: "Duke", Position: "PF", Tier: TierSuperstar, Impact: 10, Note: "Projected #1 pick, NPOY candidate"},
	"Dylan Harper":         {Team: "Rutgers", Position: "SG", Tier: TierSuperstar, Impact: 10, Note: "Projected top-3 pick, elite scorer"},
	"Ace Bailey":           {Team: "Rutgers", Position: "SF", Tier: TierSuperstar, Impact: 10, Note: "Projected top-5 pick, two-way wing"},
	"Kasparas Jakucionis":  {Team: "Illinois", Position: "PG", Tier: TierSuperstar, Impact: 10, Note: "Big Ten POY, projected lottery pick"},
	"VJ Edgecombe":         {Team: "Baylor", Position: "SG", Tier: TierSuperstar, Impact: 10, Note: "Explosive scorer, projected lottery pick"},
	"Liam McNeeley":        {Team: "Connecticut", Position: "SF", Tier: TierSuperstar, Impact: 10, Note: "UConn's go-to scorer, lottery prospect"},

	// ── STAR (9) ── All-American caliber / Top ~20 nationally
	"Mark Sears":            {Team: "Alabama", Position: "PG", Tier: TierStar, Impact: 9, Note: "SEC POY candidate, elite playmaker"},
	"Johni Broome":          {Team: "Auburn", Position: "C", Tier: TierStar, Impact: 9, Note: "Dominant big, NPOY candidate"},
	"RJ Davis":              {Team: "North Carolina", Position: "PG", Tier: TierStar, Impact: 9, Note: "5th-year senior, ACC's top guard"},
	"Otega Oweh":            {Team: "Michigan", Position: "SF", Tier: TierStar, Impact: 9, Note: "Michigan's top scorer, lottery prospect"},
	"Tre Johnson":           {Team: "Texas", Position: "SG", Tier: TierStar, Impact: 9, Note: "Elite freshman scorer, projected top-5 pick"},
	"Chaz Lanier":           {Team: "Tennessee", Position: "SG", Tier: TierStar, Impact: 9, Note: "SEC leading scorer, sharpshooting transfer"},
	"Danny Wolf":            {Team: "Michigan", Position: "C", Tier: TierStar, Impact: 9, Note: "7-footer, versatile big, lottery prospect"},
	"Jeremiah Fears":        {Team: "Oklahoma", Position: "PG", Tier: TierStar, Impact: 9, Note: "5-star freshman, projected lottery pick"},
	"Kon Knueppel":          {Team: "Duke", Position: "SG", Tier: TierStar, Impact: 9, Note: "Duke's second scorer, elite shooting"},
	"Nolan Traore":          {Team: "Creighton", Position: "PG", Tier: TierStar, Impact: 9, Note: "French lottery prospect, elite passer"},
	"Zuby Ejiofor":          {Team: "Duke", Position: "C", Tier: TierStar, Impact: 9, Note: "Duke's anchor, elite rim protector"},
	"AJ Storr":              {Team: "Kansas", Position: "SG", Tier: TierStar, Impact: 9, Note: "Big 12 elite scorer, transfer from Wisconsin"},
	"Hunter Dickinson":      {Team: "Kansas", Position: "C", Tier: TierStar, Impact: 9, Note: "Veteran 7-footer, Big 12 POY candidate"},
	"Darryn Peterson":       {Team: "Kansas", Position: "PF", Tier: TierStar, Impact: 9, Note: "#1 recruit, projected top-5 pick"},
	"Egor Demin":            {Team: "Baylor", Position: "PG", Tier: TierStar, Impact: 9, Note: "Russian lottery prospect, elite size for PG"},
	"Collin Murray-Boyles":  {Team: "South Carolina", Position: "PF", Tier: TierStar, Impact: 9, Note: "SEC star, versatile forward"},

	// ── KEY STAR (8) ── All-Conference First Team / Top ~50 nationally
	"JT Toppin":              {Team: "Texas Tech", Position: "F", Tier: TierKeyStar, Impact: 9, Note: "Big 12 star, elite two-way forward, transfer from Kentucky"},
	"Tyrese Proctor":         {Team: "Duke", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Duke's floor general, experienced guard"},
	"Ian Jackson":            {Team: "North Carolina", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "5-star freshman, projected lottery pick"},
	"Caleb Love":             {Team: "Arizona", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Experienced guard, Arizona's engine"},
	"Jalen Bridges":          {Team: "Houston", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "Houston's veteran leader"},
	"Emanuel Sharp":          {Team: "Houston", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Houston elite shooter"},
	"J'Wan Roberts":          {Team: "Houston", Position: "PF", Tier: TierKeyStar, Impact: 8, Note: "Houston's interior anchor"},
	"L.J. Cryer":             {Team: "Houston", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Houston floor general, scoring guard"},
	"Terrence Shannon Jr.":   {Team: "Illinois", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Elite two-way guard"},
	"Curtis Jones":           {Team: "Iowa St.", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Big 12 elite guard, Iowa St. leader"},
	"Tamin Lipsey":           {Team: "Iowa St.", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Elite defender, Iowa St. engine"},
	"Milan Momcilovic":       {Team: "Iowa St.", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Elite shooter, stretch scoring"},
	"Braden Smith":           {Team: "Purdue", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Big Ten's best passer, floor general"},
	"Trey Kaufman-Renn":      {Team: "Purdue", Position: "PF", Tier: TierKeyStar, Impact: 8, Note: "Purdue's post anchor after Edey"},
	"Ryan Nembhard":          {Team: "Gonzaga", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "WCC POY candidate, elite distributor"},
	"Graham Ike":             {Team: "Gonzaga", Position: "PF", Tier: TierKeyStar, Impact: 8, Note: "Gonzaga's interior scorer"},
	"Alex Karaban":           {Team: "Connecticut", Position: "PF", Tier: TierKeyStar, Impact: 8, Note: "UConn's versatile veteran big"},
	"Ahmad Nowell":           {Team: "Florida", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Florida's engine, SEC elite guard"},
	"Walter Clayton Jr.":     {Team: "Florida", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Florida's leading scorer"},
	"Jaylin Williams":        {Team: "Michigan St.", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "MSU's top scorer, experienced wing"},
	"Jase Richardson":        {Team: "Michigan St.", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "5-star freshman, MSU's future"},
	"Derik Queen":            {Team: "Maryland", Position: "C", Tier: TierKeyStar, Impact: 8, Note: "Big Ten star center, double-double machine"},
	"Taylor Hendricks":       {Team: "Vanderbilt", Position: "PF", Tier: TierKeyStar, Impact: 8, Note: "Vandy's versatile big, SEC breakout"},
	"Tyler Kolek":            {Team: "Marquette", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Big East POY candidate, elite assist man"},
	"Kam Jones":              {Team: "Marquette", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Marquette's top scorer, clutch performer"},
	"Dalton Knecht":          {Team: "Tennessee", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "Vols veteran scorer"},
	"Zakai Zeigler":          {Team: "Tennessee", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Tennessee's heart, elite defender"},
	"J.P. Estrella":          {Team: "Tennessee", Position: "PF", Tier: TierKeyStar, Impact: 8, Note: "Tennessee's interior presence"},
	"Labaron Philon":         {Team: "Alabama", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "5-star freshman, Alabama's future"},
	"Aden Holloway":          {Team: "Alabama", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Alabama's explosive guard"},
	"Cliff Omoruyi":          {Team: "Alabama", Position: "C", Tier: TierKeyStar, Impact: 8, Note: "Alabama's rim protector"},
	"Flory Bidunga":          {Team: "Arkansas", Position: "C", Tier: TierKeyStar, Impact: 8, Note: "5-star big, elite shot blocker"},
	"D.J. Wagner":            {Team: "Arkansas", Position: "G", Tier: TierKeyStar, Impact: 8, Note: "Transfer from Kentucky, scoring guard"},
	"Justin Edwards":         {Team: "Kentucky", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "Kentucky wing, NBA talent"},
	"Otis Livingston II":     {Team: "Kentucky", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Kentucky floor general"},
	"Jaxson Robinson":        {Team: "Kentucky", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Elite shooter, transfer impact"},
	"Jaylen Crocker-Johnson": {Team: "Minnesota", Position: "F", Tier: TierKeyStar, Impact: 8, Note: "Minnesota's top player, foot injury"},
	"Kadary Richmond":        {Team: "St. John's", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Big East star guard, St. John's leader"},
	"RJ Luis Jr.":            {Team: "St. John's", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "St. John's versatile wing scorer"},
	"Pop Isaacs":             {Team: "Baylor", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Baylor's sharpshooting guard"},
	"Cody Williams":          {Team: "Arizona", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "Arizona's lottery prospect wing"},
	"Matas Buzelis":          {Team: "Wake Forest", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "Transfer impact, NBA prospect"},
	"Isaiah Collier":         {Team: "USC", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "USC's top point guard, lottery talent"},
	"Boogie Fland":           {Team: "Arkansas", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "5-star freshman, explosive scorer"},
	"Karter Knox":            {Team: "Arkansas", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "Arkansas wing, starter"},
	"Malique Ewin":           {Team: "Arkansas", Position: "C", Tier: TierKeyStar, Impact: 7, Note: "Arkansas center, rotation big"},
	"Jason Sheldon":          {Team: "Nebraska", Position: "PG", Tier: TierKeyStar, Impact: 8, Note: "Nebraska's lead guard"},
	"Brice Williams":         {Team: "Nebraska", Position: "SF", Tier: TierKeyStar, Impact: 8, Note: "Nebraska's veteran wing"},
	"Tobe Awaka":             {Team: "Vanderbilt", Position: "C", Tier: TierKeyStar, Impact: 8, Note: "Vanderbilt interior, SEC starter"},
	"Jason Edwards":          {Team: "Vanderbilt", Position: "SG", Tier: TierKeyStar, Impact: 8, Note: "Vanderbilt scoring guard"},

	// ── STARTER (7) ── Important starters on ranked teams
	"Johnell Davis":      {Team: "Florida", Position: "SF", Tier: TierStarter, Impact: 7, Note: "Florida's key transfer wing"},
	"Sam Rubin":          {Team: "Florida", Position: "PF", Tier: TierStarter, Impact: 7, Note: "Florida's stretch four"},
	"Jalen Wilson":       {Team: "Kansas", Position: "SF", Tier: TierStarter, Impact: 7, Note: "Kansas experienced forward"},
	"KJ Adams Jr.":       {Team: "Kansas", Position: "PF", Tier: TierStarter, Impact: 7, Note: "Kansas's energy forward"},
	"Dajuan Harris Jr.":  {Team: "Kansas", Position: "PG", Tier: TierStarter, Impact: 7, Note: "Kansas veteran point guard"},
	"Reed Sheppard":      {Team: "Houston", Position: "SG", Tier: TierStarter, Impact: 7, Note: "Transfer sharpshooter"},
	"Terrance Arceneaux": {Team: "Houston", Position: "SF", Tier: TierStarter, Impact: 7, Note: "Houston wing depth"},
	"Dawson Garcia":      {Team: "North Carolina", Position: "PF", Tier: TierStarter, Impact: 7, Note: "UNC's stretch big, veteran"},
	"Elliot Cadeau":      {Team: "North Carolina", Position: "PG", Tier: TierStarter, Impact: 7, Note: "UNC's young point guard"},
	"Jeremy Roach":       {Team: "Baylor", Position: "PG", Tier: TierStarter, Impact: 7, Note: "Experienced guard, transfer from Duke"},
	"Jalen Duren":        {Team: "Villanova", Position: "C", Tier: TierStarter, Impact: 7, Note: "Villanova center"},
	"Chris Cenac Jr.":    {Team: "Saint Louis", Position: "PF", Tier: TierStarter, Impact: 7, Note: "A-10 star forward"},
	"Robbie Avila":       {Team: "Saint Louis", Position: "C", Tier: TierStarter, Impact: 7, Note: "A-10 star center, double-double threat"},
	"Jordan Pope":        {Team: "Texas Tech", Position: "PG", Tier: TierStarter, Impact: 7, Note: "Tech's floor general"},
	"Darrion Williams":   {Team: "Texas Tech", Position: "SF", Tier: TierStarter, Impact: 7, Note: "Tech's versatile wing"},
	"Chance McMillian":   {Team: "Texas Tech", Position: "SG", Tier: TierStarter, Impact: 7, Note: "Tech's scoring guard"},
}
