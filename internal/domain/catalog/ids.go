package catalog

import "github.com/okian/teamboard/internal/domain/model"

// Task categories.
const (
	// AX team.
	TaskProjectPlanning         model.TaskID = "PROJECT_PLANNING"
	TaskRequirementsDefinition  model.TaskID = "REQUIREMENTS_DEFINITION"
	TaskStakeholderCoordination model.TaskID = "STAKEHOLDER_COORDINATION"
	TaskScheduleResourceMgmt    model.TaskID = "SCHEDULE_RESOURCE_MGMT"
	TaskDataPrototype           model.TaskID = "DATA_PROTOTYPE"
	TaskShootingPlanning        model.TaskID = "SHOOTING_PLANNING"
	TaskAgentResearch           model.TaskID = "AGENT_RESEARCH"
	TaskQAReview                model.TaskID = "QA_REVIEW"
	TaskUserTestDesign          model.TaskID = "USER_TEST_DESIGN"
	TaskChangeManagement        model.TaskID = "CHANGE_MANAGEMENT"
	TaskTrainingOnboarding      model.TaskID = "TRAINING_ONBOARDING"
	TaskReporting               model.TaskID = "REPORTING"

	// AI engineering: backend.
	TaskAPIDevelopment          model.TaskID = "API_DEVELOPMENT"
	TaskServerArchitecture      model.TaskID = "SERVER_ARCHITECTURE"
	TaskAuthSystem              model.TaskID = "AUTH_SYSTEM"
	TaskPerformanceOptimization model.TaskID = "PERFORMANCE_OPTIMIZATION"

	// AI engineering: frontend.
	TaskUIUXImplementation   model.TaskID = "UI_UX_IMPLEMENTATION"
	TaskComponentDevelopment model.TaskID = "COMPONENT_DEVELOPMENT"
	TaskStateManagement      model.TaskID = "STATE_MANAGEMENT"
	TaskResponsiveDesign     model.TaskID = "RESPONSIVE_DESIGN"

	// AI engineering: data pipeline.
	TaskETLProcess               model.TaskID = "ETL_PROCESS"
	TaskDataCollectionAutomation model.TaskID = "DATA_COLLECTION_AUTOMATION"
	TaskScheduling               model.TaskID = "SCHEDULING"
	TaskDataQualityManagement    model.TaskID = "DATA_QUALITY_MANAGEMENT"

	// AI engineering: devops.
	TaskCICD               model.TaskID = "CI_CD"
	TaskMonitoringSystem   model.TaskID = "MONITORING_SYSTEM"
	TaskIncidentResponse   model.TaskID = "INCIDENT_RESPONSE"
	TaskSecurityManagement model.TaskID = "SECURITY_MANAGEMENT"

	// AI engineering: database.
	TaskSchemaDesign      model.TaskID = "SCHEMA_DESIGN"
	TaskQueryOptimization model.TaskID = "QUERY_OPTIMIZATION"
	TaskMigration         model.TaskID = "MIGRATION"
	TaskBackupRecovery    model.TaskID = "BACKUP_RECOVERY"

	// AI engineering: agents.
	TaskPromptEngineering model.TaskID = "PROMPT_ENGINEERING"
	TaskRAGSystem         model.TaskID = "RAG_SYSTEM"
	TaskWorkflowDesign    model.TaskID = "WORKFLOW_DESIGN"
	TaskModelEvaluation   model.TaskID = "MODEL_EVALUATION"
	TaskMCPServer         model.TaskID = "MCP_SERVER"

	// AI engineering: data planning.
	TaskDataModeling    model.TaskID = "DATA_MODELING"
	TaskKPIDefinition   model.TaskID = "KPI_DEFINITION"
	TaskDashboardDesign model.TaskID = "DASHBOARD_DESIGN"
	TaskAnalysisReport  model.TaskID = "ANALYSIS_REPORT"
)

// Skills.
const (
	// AX team.
	SkillProjectManagement     model.SkillID = "PROJECT_MANAGEMENT"
	SkillRequirementsAnalysis  model.SkillID = "REQUIREMENTS_ANALYSIS"
	SkillCommunication         model.SkillID = "COMMUNICATION"
	SkillStakeholderManagement model.SkillID = "STAKEHOLDER_MANAGEMENT"
	SkillRiskManagement        model.SkillID = "RISK_MANAGEMENT"
	SkillPRDWriting            model.SkillID = "PRD_WRITING"
	SkillPresentation          model.SkillID = "PRESENTATION"
	SkillDataModeling          model.SkillID = "DATA_MODELING_SKILL"
	SkillDataLiteracy          model.SkillID = "DATA_LITERACY"
	SkillAIToolUsage           model.SkillID = "AI_TOOL_USAGE"
	SkillUXPlanning            model.SkillID = "UX_PLANNING"
	SkillBusinessAnalysis      model.SkillID = "BUSINESS_ANALYSIS"
	SkillFashionDomain         model.SkillID = "FASHION_DOMAIN"
	SkillEntertainmentDomain   model.SkillID = "ENTERTAINMENT_DOMAIN"

	// AI engineering.
	SkillPython              model.SkillID = "PYTHON"
	SkillJavaScriptTS        model.SkillID = "JAVASCRIPT_TYPESCRIPT"
	SkillSQL                 model.SkillID = "SQL"
	SkillGit                 model.SkillID = "GIT"
	SkillFastAPIDjango       model.SkillID = "FASTAPI_DJANGO"
	SkillReactNext           model.SkillID = "REACT_NEXTJS"
	SkillNodeJS              model.SkillID = "NODEJS"
	SkillAWSGCP              model.SkillID = "AWS_GCP"
	SkillDocker              model.SkillID = "DOCKER"
	SkillKubernetes          model.SkillID = "KUBERNETES"
	SkillTerraform           model.SkillID = "TERRAFORM"
	SkillSnowflakeBigQuery   model.SkillID = "SNOWFLAKE_BIGQUERY"
	SkillAirflow             model.SkillID = "AIRFLOW"
	SkillDBT                 model.SkillID = "DBT"
	SkillPandasPolars        model.SkillID = "PANDAS_POLARS"
	SkillLLMAPI              model.SkillID = "LLM_API"
	SkillVectorDB            model.SkillID = "VECTOR_DB"
	SkillLangChainLlamaIndex model.SkillID = "LANGCHAIN_LLAMAINDEX"
	SkillMCP                 model.SkillID = "MCP"
	SkillPromptEngineering   model.SkillID = "PROMPT_ENGINEERING_SKILL"
	SkillTechDocumentation   model.SkillID = "TECH_DOCUMENTATION"
	SkillCodeReview          model.SkillID = "CODE_REVIEW"
	SkillArchitectureDesign  model.SkillID = "ARCHITECTURE_DESIGN"
)
