package client

// Selection sets, one per entity.
const (
	inquiryFields = `id name email subject message inquiry_date status type assigned_to response response_date`

	mediaItemFields = `id title type url thumbnail_url file_size dimensions duration upload_date description category
    tags { id tag_name }`

	testimonialFields = `id name company message rating testimonial_date status featured avatar_url
    portfolio_item_id`

	teamMemberFields = `id name role email phone avatar_url bio join_date status
    skills { id skill_name }
    social_links { id platform url }`

	categoryFields = `id name description color created_at`

	portfolioItemFields = `id title description category_id thumbnail_url client_name project_date status featured
    project_url testimonial
    category { id name color }
    images { id image_url alt_text sort_order }
    tags { id tag_name }
    technologies { id technology_name }
    team_members { id team_member_id role }`

	businessStatsFields = `id completed_projects happy_clients perspective_clients total_revenue
    average_project_value is_public auto_update`

	systemSettingsFields = `id business_name business_description industry website_url contact_email theme`
)

func listOp(name, fields string, paged bool) Operation {
	doc := "query " + name + "($limit: Int, $offset: Int) {\n  " + name + "(limit: $limit, offset: $offset) {\n    "
	if paged {
		doc += "items {\n    " + fields + "\n    }\n    total"
	} else {
		doc = "query " + name + " {\n  " + name + " {\n    " + fields
	}
	doc += "\n  }\n}"
	return Operation{Name: name, Document: doc, Paged: paged}
}

func createOp(name, inputType, payload, fields string) Operation {
	doc := "mutation " + name + "($input: " + inputType + "!) {\n  " + name + "(input: $input) {\n    success\n    message\n    " +
		payload + " {\n    " + fields + "\n    }\n  }\n}"
	return Operation{Name: name, Document: doc, Payload: payload}
}

func updateOp(name, inputType, payload, fields string) Operation {
	doc := "mutation " + name + "($id: ID!, $input: " + inputType + "!) {\n  " + name + "(id: $id, input: $input) {\n    success\n    message\n    " +
		payload + " {\n    " + fields + "\n    }\n  }\n}"
	return Operation{Name: name, Document: doc, Payload: payload}
}

func deleteOp(name string) Operation {
	doc := "mutation " + name + "($id: ID!) {\n  " + name + "(id: $id) {\n    success\n    message\n  }\n}"
	return Operation{Name: name, Document: doc}
}

func singletonQuery(name, fields string) Operation {
	return Operation{Name: name, Document: "query " + name + " {\n  " + name + " {\n    " + fields + "\n  }\n}"}
}

var (
	listInquiries = listOp("inquiries", inquiryFields, true)
	createInquiry = createOp("createInquiry", "CreateInquiryInput", "inquiry", inquiryFields)
	updateInquiry = updateOp("updateInquiry", "UpdateInquiryInput", "inquiry", inquiryFields)
	deleteInquiry = deleteOp("deleteInquiry")

	listMediaItems  = listOp("mediaItems", mediaItemFields, true)
	createMediaItem = createOp("createMediaItem", "CreateMediaItemInput", "mediaItem", mediaItemFields)
	updateMediaItem = updateOp("updateMediaItem", "UpdateMediaItemInput", "mediaItem", mediaItemFields)
	deleteMediaItem = deleteOp("deleteMediaItem")

	listTestimonials  = listOp("testimonials", testimonialFields, true)
	createTestimonial = createOp("createTestimonial", "CreateTestimonialInput", "testimonial", testimonialFields)
	updateTestimonial = updateOp("updateTestimonial", "UpdateTestimonialInput", "testimonial", testimonialFields)
	deleteTestimonial = deleteOp("deleteTestimonial")

	listTeamMembers  = listOp("teamMembers", teamMemberFields, false)
	createTeamMember = createOp("createTeamMember", "CreateTeamMemberInput", "teamMember", teamMemberFields)
	updateTeamMember = updateOp("updateTeamMember", "UpdateTeamMemberInput", "teamMember", teamMemberFields)
	deleteTeamMember = deleteOp("deleteTeamMember")

	listPortfolioCategories = listOp("portfolioCategories", categoryFields, false)
	createPortfolioCategory = createOp("createPortfolioCategory", "CreatePortfolioCategoryInput", "portfolioCategory", categoryFields)
	updatePortfolioCategory = updateOp("updatePortfolioCategory", "UpdatePortfolioCategoryInput", "portfolioCategory", categoryFields)
	deletePortfolioCategory = deleteOp("deletePortfolioCategory")

	listPortfolioItems  = listOp("portfolioItems", portfolioItemFields, true)
	createPortfolioItem = createOp("createPortfolioItem", "CreatePortfolioItemInput", "portfolioItem", portfolioItemFields)
	updatePortfolioItem = updateOp("updatePortfolioItem", "UpdatePortfolioItemInput", "portfolioItem", portfolioItemFields)
	deletePortfolioItem = deleteOp("deletePortfolioItem")

	getBusinessStatistics    = singletonQuery("businessStatistics", businessStatsFields)
	updateBusinessStatistics = createOp("updateBusinessStatistics", "UpdateBusinessStatisticsInput", "businessStatistics", businessStatsFields)

	getSystemSettings    = singletonQuery("systemSettings", systemSettingsFields)
	updateSystemSettings = createOp("updateSystemSettings", "UpdateSystemSettingsInput", "systemSettings", systemSettingsFields)
)
