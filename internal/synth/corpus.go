package synth

var dataCompanies = []string{
	"Google", "Microsoft", "Amazon", "Meta", "Apple",
	"McKinsey & Company", "BCG", "Deloitte", "Accenture", "Capgemini",
	"Goldman Sachs", "JPMorgan Chase", "BlackRock", "Snowflake", "Palantir",
}

var engineeringCompanies = []string{
	"Google", "Microsoft", "Amazon", "Meta", "Netflix",
	"Uber", "Airbnb", "Stripe", "Databricks", "Figma",
	"Coinbase", "DoorDash", "Notion", "Slack", "Zoom",
}

var generalCompanies = []string{
	"Google", "Microsoft", "Amazon", "Salesforce", "Oracle",
	"IBM", "Adobe", "Deloitte", "PwC", "EY",
	"Accenture", "Stripe", "Zoom", "DataRobot", "Instacart",
}

var seniorityPrefixes = []string{"Senior", "Junior", "Lead", "Principal", "Staff"}

var roleSuffixes = []string{"I", "II", "III", "Specialist", "Manager", "Consultant", "Expert"}

var dataRelatedTitles = []string{
	"Business Analyst", "Data Scientist", "Business Intelligence Analyst",
}

var engineeringRelatedTitles = []string{
	"Full Stack Developer", "Backend Engineer", "Frontend Developer",
}

var openingTemplates = []string{
	"%[1]s is seeking a %[2]s to join our dynamic team. You'll work with cutting-edge technologies and contribute to impactful projects that reach millions of users worldwide.",
	"Join %[1]s as a %[2]s! We're looking for someone passionate about %[3]s to help drive our data-driven decision making and business growth.",
	"Exciting opportunity at %[1]s! As a %[2]s, you'll collaborate with cross-functional teams to deliver innovative solutions and drive business impact.",
	"%[1]s is hiring a talented %[2]s to work on challenging problems at scale. You'll have the opportunity to work with industry-leading tools and technologies.",
}

var responsibilityBullets = []string{
	"- Analyze complex datasets to identify trends and insights",
	"- Collaborate with stakeholders to understand business requirements",
	"- Develop and maintain automated reporting dashboards",
	"- Present findings and recommendations to senior leadership",
	"- Work with cross-functional teams to implement data solutions",
	"- Ensure data quality and integrity across all analyses",
}

var requirementBullets = []string{
	"- Bachelor's degree in relevant field or equivalent experience",
	"- 2+ years of experience in %s or related role",
	"- Strong analytical and problem-solving skills",
	"- Experience with SQL, Python, or similar tools",
	"- Excellent communication and presentation skills",
	"- Ability to work independently and manage multiple projects",
}

const closingLine = "We offer competitive compensation, comprehensive benefits, and opportunities for professional growth."
