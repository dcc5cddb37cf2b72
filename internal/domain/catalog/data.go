package catalog

import "github.com/okian/teamboard/internal/domain/model"

type skills = []model.SkillID

var teams = []model.Team{
	{ID: "ax", Name: "AX Team", Kind: model.TeamAX, Description: "PM/planning: project management, requirements, stakeholder alignment"},
	{ID: "ai-eng", Name: "AI Engineering Team", Kind: model.TeamAIEngineering, Description: "Technical delivery: data engineering, data planning, full-stack development"},
}

var tasks = []model.TaskDefinition{
	// AX team.
	{
		ID: TaskProjectPlanning, Name: "Project planning", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Set overall project scope and direction",
		Deliverables:      []string{"Project plan", "WBS"},
		RequiredSkills:    skills{SkillProjectManagement, SkillRiskManagement, SkillPRDWriting},
		RecommendedSkills: skills{SkillRequirementsAnalysis, SkillCommunication, SkillStakeholderManagement, SkillBusinessAnalysis, SkillFashionDomain, SkillEntertainmentDomain},
	},
	{
		ID: TaskRequirementsDefinition, Name: "Requirements definition", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Capture user needs and write functional specifications",
		Deliverables:      []string{"PRD", "Functional spec"},
		RequiredSkills:    skills{SkillRequirementsAnalysis, SkillCommunication, SkillPRDWriting},
		RecommendedSkills: skills{SkillProjectManagement, SkillStakeholderManagement, SkillDataModeling, SkillDataLiteracy, SkillAIToolUsage, SkillUXPlanning, SkillFashionDomain, SkillEntertainmentDomain},
	},
	{
		ID: TaskStakeholderCoordination, Name: "Stakeholder coordination", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Align departments, executives and external vendors",
		Deliverables:      []string{"Meeting minutes", "Agreement"},
		RequiredSkills:    skills{SkillCommunication, SkillStakeholderManagement, SkillRiskManagement},
		RecommendedSkills: skills{SkillProjectManagement, SkillRequirementsAnalysis, SkillPRDWriting, SkillPresentation, SkillBusinessAnalysis},
	},
	{
		ID: TaskScheduleResourceMgmt, Name: "Schedule and resource management", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Maintain the WBS, milestones and resource split",
		Deliverables:      []string{"Schedule", "Resource overview"},
		RequiredSkills:    skills{SkillProjectManagement, SkillRiskManagement},
		RecommendedSkills: skills{SkillCommunication, SkillStakeholderManagement, SkillPRDWriting, SkillDataLiteracy},
	},
	{
		ID: TaskDataPrototype, Name: "Data processing prototype", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Design data handling and assemble a prototype",
		Deliverables:      []string{"Prototype screens"},
		RequiredSkills:    skills{SkillRequirementsAnalysis, SkillDataModeling, SkillDataLiteracy},
		RecommendedSkills: skills{SkillCommunication, SkillPRDWriting, SkillAIToolUsage, SkillUXPlanning},
	},
	{
		ID: TaskShootingPlanning, Name: "Shooting planning", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Plan and coordinate content shoots",
		Deliverables:      []string{"Shooting plan", "Schedule"},
		RequiredSkills:    skills{SkillCommunication, SkillPRDWriting},
		RecommendedSkills: skills{SkillProjectManagement, SkillRequirementsAnalysis, SkillStakeholderManagement, SkillRiskManagement, SkillFashionDomain, SkillEntertainmentDomain},
	},
	{
		ID: TaskAgentResearch, Name: "Agent research", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Survey AI agent technology and trends",
		Deliverables:      []string{"Research report"},
		RequiredSkills:    skills{SkillAIToolUsage},
		RecommendedSkills: skills{SkillRequirementsAnalysis, SkillPRDWriting, SkillDataLiteracy},
	},
	{
		ID: TaskQAReview, Name: "QA review", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Verify deliverable quality and feed back findings",
		Deliverables:      []string{"Review checklist", "Feedback"},
		RequiredSkills:    skills{SkillRequirementsAnalysis, SkillCommunication},
		RecommendedSkills: skills{SkillProjectManagement, SkillPRDWriting, SkillDataLiteracy, SkillUXPlanning, SkillFashionDomain, SkillEntertainmentDomain},
	},
	{
		ID: TaskUserTestDesign, Name: "User test design", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Design and run UAT scenarios and analyse results",
		Deliverables:      []string{"Test scenarios", "Results report"},
		RequiredSkills:    skills{SkillRequirementsAnalysis, SkillCommunication, SkillPRDWriting},
		RecommendedSkills: skills{SkillProjectManagement, SkillStakeholderManagement, SkillDataLiteracy, SkillUXPlanning, SkillFashionDomain, SkillEntertainmentDomain},
	},
	{
		ID: TaskChangeManagement, Name: "Change management", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Handle scope change requests and impact analysis",
		Deliverables:      []string{"Change request", "Impact analysis"},
		RequiredSkills:    skills{SkillProjectManagement, SkillRequirementsAnalysis, SkillCommunication, SkillStakeholderManagement, SkillRiskManagement, SkillPRDWriting},
		RecommendedSkills: skills{SkillBusinessAnalysis},
	},
	{
		ID: TaskTrainingOnboarding, Name: "Training and onboarding", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Teach deliverable usage and write manuals",
		Deliverables:      []string{"Training material", "User manual"},
		RequiredSkills:    skills{SkillCommunication, SkillPRDWriting, SkillPresentation},
		RecommendedSkills: skills{SkillRequirementsAnalysis, SkillStakeholderManagement, SkillAIToolUsage},
	},
	{
		ID: TaskReporting, Name: "Reporting", Team: model.TeamAX, Area: model.AreaPMPlanning,
		Description:       "Report to executives and stakeholders",
		Deliverables:      []string{"Report", "Slides"},
		RequiredSkills:    skills{SkillCommunication, SkillStakeholderManagement, SkillPRDWriting, SkillPresentation},
		RecommendedSkills: skills{SkillProjectManagement, SkillDataLiteracy, SkillBusinessAnalysis, SkillFashionDomain, SkillEntertainmentDomain},
	},

	// AI engineering: backend.
	{
		ID: TaskAPIDevelopment, Name: "API design and development", Team: model.TeamAIEngineering, Area: model.AreaBackend,
		Description:       "Design and implement REST/GraphQL APIs",
		Deliverables:      []string{"API spec", "Endpoints"},
		RequiredSkills:    skills{SkillPython, SkillFastAPIDjango, SkillGit, SkillTechDocumentation},
		RecommendedSkills: skills{SkillSQL, SkillNodeJS, SkillAWSGCP, SkillDocker, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskServerArchitecture, Name: "Server architecture design", Team: model.TeamAIEngineering, Area: model.AreaBackend,
		Description:       "Design system structure and choose the stack",
		Deliverables:      []string{"Architecture document"},
		RequiredSkills:    skills{SkillPython, SkillFastAPIDjango, SkillAWSGCP, SkillDocker, SkillTechDocumentation, SkillArchitectureDesign},
		RecommendedSkills: skills{SkillSQL, SkillNodeJS, SkillKubernetes, SkillTerraform, SkillCodeReview},
	},
	{
		ID: TaskAuthSystem, Name: "Authentication and authorisation", Team: model.TeamAIEngineering, Area: model.AreaBackend,
		Description:       "Build user authentication and permission management",
		Deliverables:      []string{"Auth module"},
		RequiredSkills:    skills{SkillPython, SkillFastAPIDjango, SkillGit},
		RecommendedSkills: skills{SkillSQL, SkillAWSGCP, SkillTechDocumentation, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskPerformanceOptimization, Name: "Performance optimisation", Team: model.TeamAIEngineering, Area: model.AreaBackend,
		Description:       "Improve response times and spread load",
		Deliverables:      []string{"Optimisation report"},
		RequiredSkills:    skills{SkillPython, SkillSQL},
		RecommendedSkills: skills{SkillFastAPIDjango, SkillAWSGCP, SkillDocker, SkillTechDocumentation, SkillCodeReview, SkillArchitectureDesign},
	},

	// AI engineering: frontend.
	{
		ID: TaskUIUXImplementation, Name: "UI/UX implementation", Team: model.TeamAIEngineering, Area: model.AreaFrontend,
		Description:       "Build screens from design mockups",
		Deliverables:      []string{"Web/app screens"},
		RequiredSkills:    skills{SkillJavaScriptTS, SkillReactNext, SkillGit},
		RecommendedSkills: skills{SkillNodeJS, SkillTechDocumentation, SkillCodeReview},
	},
	{
		ID: TaskComponentDevelopment, Name: "Component development", Team: model.TeamAIEngineering, Area: model.AreaFrontend,
		Description:       "Build reusable UI components",
		Deliverables:      []string{"Component library"},
		RequiredSkills:    skills{SkillJavaScriptTS, SkillReactNext, SkillGit},
		RecommendedSkills: skills{SkillTechDocumentation, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskStateManagement, Name: "State management", Team: model.TeamAIEngineering, Area: model.AreaFrontend,
		Description:       "Implement application state logic",
		Deliverables:      []string{"State module"},
		RequiredSkills:    skills{SkillJavaScriptTS, SkillReactNext, SkillGit},
		RecommendedSkills: skills{SkillTechDocumentation, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskResponsiveDesign, Name: "Responsive design", Team: model.TeamAIEngineering, Area: model.AreaFrontend,
		Description:       "Implement layouts for every device class",
		Deliverables:      []string{"Responsive UI"},
		RequiredSkills:    skills{SkillJavaScriptTS, SkillReactNext},
		RecommendedSkills: skills{SkillGit, SkillCodeReview},
	},

	// AI engineering: data pipeline.
	{
		ID: TaskETLProcess, Name: "ETL process", Team: model.TeamAIEngineering, Area: model.AreaDataPipeline,
		Description:       "Build extract, transform and load processes",
		Deliverables:      []string{"ETL pipeline"},
		RequiredSkills:    skills{SkillPython, SkillSQL, SkillGit, SkillAirflow, SkillPandasPolars},
		RecommendedSkills: skills{SkillAWSGCP, SkillDocker, SkillSnowflakeBigQuery, SkillDBT, SkillTechDocumentation, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskDataCollectionAutomation, Name: "Data collection automation", Team: model.TeamAIEngineering, Area: model.AreaDataPipeline,
		Description:       "Automate crawling and API ingestion",
		Deliverables:      []string{"Collection scripts"},
		RequiredSkills:    skills{SkillPython, SkillGit, SkillAirflow, SkillPandasPolars},
		RecommendedSkills: skills{SkillJavaScriptTS, SkillSQL, SkillNodeJS, SkillAWSGCP, SkillDocker, SkillTechDocumentation, SkillCodeReview},
	},
	{
		ID: TaskScheduling, Name: "Scheduling", Team: model.TeamAIEngineering, Area: model.AreaDataPipeline,
		Description:       "Configure and operate batch schedules",
		Deliverables:      []string{"Scheduler configuration"},
		RequiredSkills:    skills{SkillPython, SkillAirflow},
		RecommendedSkills: skills{SkillGit, SkillAWSGCP, SkillDocker, SkillTechDocumentation},
	},
	{
		ID: TaskDataQualityManagement, Name: "Data quality management", Team: model.TeamAIEngineering, Area: model.AreaDataPipeline,
		Description:       "Validate consistency and detect anomalies",
		Deliverables:      []string{"Quality report"},
		RequiredSkills:    skills{SkillPython, SkillSQL, SkillDBT, SkillPandasPolars},
		RecommendedSkills: skills{SkillGit, SkillSnowflakeBigQuery, SkillAirflow, SkillTechDocumentation, SkillCodeReview},
	},

	// AI engineering: devops.
	{
		ID: TaskCICD, Name: "CI/CD", Team: model.TeamAIEngineering, Area: model.AreaDevOps,
		Description:       "Build continuous integration and delivery pipelines",
		Deliverables:      []string{"CI/CD pipeline"},
		RequiredSkills:    skills{SkillGit, SkillAWSGCP, SkillDocker, SkillTechDocumentation},
		RecommendedSkills: skills{SkillPython, SkillJavaScriptTS, SkillKubernetes, SkillTerraform, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskMonitoringSystem, Name: "Monitoring", Team: model.TeamAIEngineering, Area: model.AreaDevOps,
		Description:       "Monitor system health and configure alerts",
		Deliverables:      []string{"Monitoring dashboard"},
		RequiredSkills:    skills{SkillAWSGCP},
		RecommendedSkills: skills{SkillPython, SkillSQL, SkillGit, SkillDocker, SkillKubernetes, SkillTechDocumentation, SkillArchitectureDesign},
	},
	{
		ID: TaskIncidentResponse, Name: "Incident response", Team: model.TeamAIEngineering, Area: model.AreaDevOps,
		Description:       "Analyse and recover from outages",
		Deliverables:      []string{"Incident report"},
		RequiredSkills:    skills{SkillPython, SkillSQL, SkillAWSGCP, SkillDocker},
		RecommendedSkills: skills{SkillJavaScriptTS, SkillGit, SkillFastAPIDjango, SkillKubernetes, SkillSnowflakeBigQuery, SkillTechDocumentation, SkillArchitectureDesign},
	},
	{
		ID: TaskSecurityManagement, Name: "Security management", Team: model.TeamAIEngineering, Area: model.AreaDevOps,
		Description:       "Scan for vulnerabilities and apply patches",
		Deliverables:      []string{"Security audit report"},
		RequiredSkills:    skills{SkillAWSGCP, SkillDocker, SkillTechDocumentation},
		RecommendedSkills: skills{SkillPython, SkillGit, SkillKubernetes, SkillTerraform, SkillCodeReview, SkillArchitectureDesign},
	},

	// AI engineering: database.
	{
		ID: TaskSchemaDesign, Name: "Schema design", Team: model.TeamAIEngineering, Area: model.AreaDatabase,
		Description:       "Design database structure",
		Deliverables:      []string{"ERD", "DDL"},
		RequiredSkills:    skills{SkillSQL, SkillSnowflakeBigQuery, SkillTechDocumentation},
		RecommendedSkills: skills{SkillGit, SkillDBT, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskQueryOptimization, Name: "Query optimisation", Team: model.TeamAIEngineering, Area: model.AreaDatabase,
		Description:       "Profile and improve query performance",
		Deliverables:      []string{"Optimised queries"},
		RequiredSkills:    skills{SkillSQL, SkillSnowflakeBigQuery},
		RecommendedSkills: skills{SkillDBT, SkillTechDocumentation, SkillCodeReview},
	},
	{
		ID: TaskMigration, Name: "Migration", Team: model.TeamAIEngineering, Area: model.AreaDatabase,
		Description:       "Migrate data and schemas",
		Deliverables:      []string{"Migration scripts"},
		RequiredSkills:    skills{SkillPython, SkillSQL, SkillGit},
		RecommendedSkills: skills{SkillAWSGCP, SkillSnowflakeBigQuery, SkillDBT, SkillTechDocumentation, SkillCodeReview},
	},
	{
		ID: TaskBackupRecovery, Name: "Backup and recovery", Team: model.TeamAIEngineering, Area: model.AreaDatabase,
		Description:       "Define and implement backup policy",
		Deliverables:      []string{"Backup policy"},
		RequiredSkills:    skills{SkillSQL, SkillAWSGCP, SkillSnowflakeBigQuery, SkillTechDocumentation},
		RecommendedSkills: skills{SkillTerraform, SkillArchitectureDesign},
	},

	// AI engineering: agents.
	{
		ID: TaskPromptEngineering, Name: "Prompt engineering", Team: model.TeamAIEngineering, Area: model.AreaAIAgent,
		Description:       "Design and tune LLM prompts",
		Deliverables:      []string{"Prompt templates"},
		RequiredSkills:    skills{SkillPython, SkillLLMAPI, SkillPromptEngineering},
		RecommendedSkills: skills{SkillGit, SkillLangChainLlamaIndex, SkillTechDocumentation, SkillCodeReview},
	},
	{
		ID: TaskRAGSystem, Name: "RAG system", Team: model.TeamAIEngineering, Area: model.AreaAIAgent,
		Description:       "Build retrieval augmented generation",
		Deliverables:      []string{"RAG pipeline"},
		RequiredSkills:    skills{SkillPython, SkillGit, SkillLLMAPI, SkillVectorDB, SkillLangChainLlamaIndex, SkillPromptEngineering},
		RecommendedSkills: skills{SkillSQL, SkillFastAPIDjango, SkillAWSGCP, SkillDocker, SkillMCP, SkillTechDocumentation, SkillCodeReview, SkillArchitectureDesign},
	},
	{
		ID: TaskWorkflowDesign, Name: "Workflow design", Team: model.TeamAIEngineering, Area: model.AreaAIAgent,
		Description:       "Design agent execution flows",
		Deliverables:      []string{"Workflow document"},
		RequiredSkills:    skills{SkillPython, SkillLLMAPI, SkillLangChainLlamaIndex, SkillPromptEngineering, SkillTechDocumentation, SkillArchitectureDesign},
		RecommendedSkills: skills{SkillGit, SkillMCP, SkillCodeReview},
	},
	{
		ID: TaskModelEvaluation, Name: "Model evaluation and tuning", Team: model.TeamAIEngineering, Area: model.AreaAIAgent,
		Description:       "Evaluate and fine-tune models",
		Deliverables:      []string{"Evaluation report"},
		RequiredSkills:    skills{SkillPython, SkillLLMAPI, SkillPandasPolars, SkillPromptEngineering},
		RecommendedSkills: skills{SkillSQL, SkillGit, SkillLangChainLlamaIndex, SkillTechDocumentation, SkillCodeReview},
	},
	{
		ID: TaskMCPServer, Name: "MCP server", Team: model.TeamAIEngineering, Area: model.AreaAIAgent,
		Description:       "Build Model Context Protocol servers",
		Deliverables:      []string{"MCP server"},
		RequiredSkills:    skills{SkillPython, SkillGit, SkillLLMAPI, SkillMCP, SkillTechDocumentation},
		RecommendedSkills: skills{SkillJavaScriptTS, SkillFastAPIDjango, SkillNodeJS, SkillAWSGCP, SkillDocker, SkillLangChainLlamaIndex, SkillPromptEngineering, SkillCodeReview, SkillArchitectureDesign},
	},

	// AI engineering: data planning.
	{
		ID: TaskDataModeling, Name: "Data modelling", Team: model.TeamAIEngineering, Area: model.AreaDataPlanning,
		Description:       "Design data models from business needs",
		Deliverables:      []string{"Data model"},
		RequiredSkills:    skills{SkillSQL, SkillSnowflakeBigQuery, SkillTechDocumentation},
		RecommendedSkills: skills{SkillPython, SkillDBT, SkillPandasPolars, SkillArchitectureDesign},
	},
	{
		ID: TaskKPIDefinition, Name: "KPI definition", Team: model.TeamAIEngineering, Area: model.AreaDataPlanning,
		Description:       "Define KPIs, metrics and their calculation",
		Deliverables:      []string{"Metric definitions"},
		RequiredSkills:    skills{SkillSQL, SkillSnowflakeBigQuery, SkillTechDocumentation},
		RecommendedSkills: skills{SkillDBT, SkillPandasPolars},
	},
	{
		ID: TaskDashboardDesign, Name: "Dashboard design", Team: model.TeamAIEngineering, Area: model.AreaDataPlanning,
		Description:       "Plan and design visual dashboards",
		Deliverables:      []string{"Dashboard plan"},
		RequiredSkills:    skills{SkillSQL, SkillTechDocumentation},
		RecommendedSkills: skills{SkillPython, SkillJavaScriptTS, SkillReactNext, SkillSnowflakeBigQuery, SkillPandasPolars, SkillArchitectureDesign},
	},
	{
		ID: TaskAnalysisReport, Name: "Analysis report", Team: model.TeamAIEngineering, Area: model.AreaDataPlanning,
		Description:       "Derive and report data-driven insights",
		Deliverables:      []string{"Analysis report"},
		RequiredSkills:    skills{SkillPython, SkillSQL, SkillSnowflakeBigQuery, SkillPandasPolars, SkillTechDocumentation},
		RecommendedSkills: skills{SkillDBT},
	},
}

var skillDefs = []model.SkillDefinition{
	// AX team.
	{ID: SkillProjectManagement, Name: "Project management", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Agile and waterfall methods in practice"},
	{ID: SkillRequirementsAnalysis, Name: "Requirements analysis", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Turn business needs into technical specs"},
	{ID: SkillCommunication, Name: "Communication", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Clear communication with every stakeholder"},
	{ID: SkillStakeholderManagement, Name: "Stakeholder management", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Coordinate across organisational levels"},
	{ID: SkillRiskManagement, Name: "Risk management", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Spot issues early and plan responses"},
	{ID: SkillPRDWriting, Name: "PRD writing", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Planning documents and requirement specs"},
	{ID: SkillPresentation, Name: "Presentation", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Presenting and persuading"},
	{ID: SkillDataModeling, Name: "Data modelling", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Design data structures and relations"},
	{ID: SkillDataLiteracy, Name: "Data literacy", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Basic SQL and data interpretation"},
	{ID: SkillAIToolUsage, Name: "AI tool usage", Team: model.TeamAX, Category: model.CategoryManagement, Description: "Prompting assistants such as Claude or ChatGPT"},
	{ID: SkillUXPlanning, Name: "UX planning", Team: model.TeamAX, Category: model.CategoryManagement, Description: "User experience design and wireframes"},
	{ID: SkillBusinessAnalysis, Name: "Business analysis", Team: model.TeamAX, Category: model.CategoryManagement, Description: "ROI and cost-benefit analysis"},
	{ID: SkillFashionDomain, Name: "Fashion domain", Team: model.TeamAX, Category: model.CategoryDomain, Description: "Fashion industry trends, vocabulary and processes"},
	{ID: SkillEntertainmentDomain, Name: "Entertainment domain", Team: model.TeamAX, Category: model.CategoryDomain, Description: "Understanding of the entertainment industry"},

	// AI engineering: development.
	{ID: SkillPython, Name: "Python", Team: model.TeamAIEngineering, Category: model.CategoryDevelopment, Description: "Backend, data processing, AI development"},
	{ID: SkillJavaScriptTS, Name: "JavaScript/TypeScript", Team: model.TeamAIEngineering, Category: model.CategoryDevelopment, Description: "Frontend and Node.js development"},
	{ID: SkillSQL, Name: "SQL", Team: model.TeamAIEngineering, Category: model.CategoryDevelopment, Description: "Database queries and analysis"},
	{ID: SkillGit, Name: "Git", Team: model.TeamAIEngineering, Category: model.CategoryDevelopment, Description: "Version control and collaboration"},
	// frameworks
	{ID: SkillFastAPIDjango, Name: "FastAPI/Django", Team: model.TeamAIEngineering, Category: model.CategoryFramework, Description: "Python web frameworks"},
	{ID: SkillReactNext, Name: "React/Next.js", Team: model.TeamAIEngineering, Category: model.CategoryFramework, Description: "Frontend frameworks"},
	{ID: SkillNodeJS, Name: "Node.js", Team: model.TeamAIEngineering, Category: model.CategoryFramework, Description: "JavaScript runtime"},
	// infrastructure
	{ID: SkillAWSGCP, Name: "AWS/GCP", Team: model.TeamAIEngineering, Category: model.CategoryInfrastructure, Description: "Cloud platforms"},
	{ID: SkillDocker, Name: "Docker", Team: model.TeamAIEngineering, Category: model.CategoryInfrastructure, Description: "Containers"},
	{ID: SkillKubernetes, Name: "Kubernetes", Team: model.TeamAIEngineering, Category: model.CategoryInfrastructure, Description: "Container orchestration"},
	{ID: SkillTerraform, Name: "Terraform", Team: model.TeamAIEngineering, Category: model.CategoryInfrastructure, Description: "Infrastructure as code"},
	// data
	{ID: SkillSnowflakeBigQuery, Name: "Snowflake/BigQuery", Team: model.TeamAIEngineering, Category: model.CategoryData, Description: "Cloud data warehouses"},
	{ID: SkillAirflow, Name: "Airflow", Team: model.TeamAIEngineering, Category: model.CategoryData, Description: "Workflow orchestration"},
	{ID: SkillDBT, Name: "dbt", Team: model.TeamAIEngineering, Category: model.CategoryData, Description: "Data transformation"},
	{ID: SkillPandasPolars, Name: "Pandas/Polars", Team: model.TeamAIEngineering, Category: model.CategoryData, Description: "Dataframe libraries"},
	// ai/ml
	{ID: SkillLLMAPI, Name: "LLM APIs", Team: model.TeamAIEngineering, Category: model.CategoryAIML, Description: "OpenAI and Anthropic APIs"},
	{ID: SkillVectorDB, Name: "Vector databases", Team: model.TeamAIEngineering, Category: model.CategoryAIML, Description: "Pinecone, Chroma, Weaviate"},
	{ID: SkillLangChainLlamaIndex, Name: "LangChain/LlamaIndex", Team: model.TeamAIEngineering, Category: model.CategoryAIML, Description: "LLM application frameworks"},
	{ID: SkillMCP, Name: "MCP", Team: model.TeamAIEngineering, Category: model.CategoryAIML, Description: "Model Context Protocol"},
	{ID: SkillPromptEngineering, Name: "Prompt engineering", Team: model.TeamAIEngineering, Category: model.CategoryAIML, Description: "Effective prompt design"},
	// collaboration
	{ID: SkillTechDocumentation, Name: "Technical writing", Team: model.TeamAIEngineering, Category: model.CategoryCollaboration, Description: "API and design documents"},
	{ID: SkillCodeReview, Name: "Code review", Team: model.TeamAIEngineering, Category: model.CategoryCollaboration, Description: "Code quality review and feedback"},
	{ID: SkillArchitectureDesign, Name: "Architecture design", Team: model.TeamAIEngineering, Category: model.CategoryCollaboration, Description: "System structure design"},
}
