package docgen

import "fmt"

// Prompt texts for classification and section drafting. Every section prompt
// asks for plain numbered points with no markdown, so the cleanup pass in
// postprocess.go only has to handle stray formatting, not rely on it.

func classificationPrompt(caseDetails string) string {
	return fmt.Sprintf(`You are a legal expert tasked with classifying a legal case into one of three categories: PIL (Public Interest Litigation), RTI (Right to Information), or Complaint.

Consider the following criteria:

PIL (Public Interest Litigation):
- Involves constitutional rights or fundamental rights
- Affects public interest or public welfare
- Concerns governance, policy, or public administration
- Has broader implications for society
- Involves environmental protection, public health, or public safety
- Challenges government actions or policies
- Involves interpretation of constitutional provisions
- Affects a large number of people or public at large
- Requires judicial intervention for proper governance

RTI (Right to Information):
- Primarily about requesting specific information from public authorities
- Seeks access to documents, records, or data
- Concerns transparency and accountability
- Based on Right to Information Act, 2005
- Focuses on obtaining information rather than challenging actions
- Individual or specific information requests
- No broader public interest implications

Consumer Complaint:
- Involves defective products or deficient services
- Concerns individual consumer grievances
- Based on Consumer Protection Act
- Involves refund, replacement, or compensation claims
- Concerns specific business transactions
- Individual or specific business disputes
- No broader public interest implications

Case Details:
%s

Analyze the case and determine the PRIMARY purpose and nature of the case. Consider:
1. What is the main objective of the case?
2. Who are the primary stakeholders affected?
3. What is the broader impact on society?
4. What type of relief is being sought?
5. What is the appropriate forum for resolution?

Respond with ONLY one of these three words: PIL, RTI, or Complaint.

Your response should be based on the PRIMARY purpose of the case, not secondary aspects. If the case has elements of multiple categories, choose the one that represents the main objective and impact of the case.`, caseDetails)
}

func pilFactsPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a senior advocate drafting a PIL petition. Given the following issue, write a concise and relevant FACTS OF THE CASE section.
Issue: %s
Additional Context: %s
Generate 2-3 key points that are most relevant to the case. Each point should be:
- Clear and concise
- Include specific dates and facts
- Focus on the most critical aspects
- Be properly formatted as numbered points
- DO NOT use any markdown formatting or special characters
Format the response as:
1. [First key point]
2. [Second key point]
3. [Third key point]`, issue, insights)
}

func pilLegalPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a senior advocate drafting a PIL petition. Given the following issue, write a concise and relevant LEGAL BASIS section.
Issue: %s
Additional Context: %s
Generate 3-4 key legal points that are most relevant to the case. Each point should:
- Cite specific constitutional provisions, laws, or precedents
- Explain how they apply to the case
- Be properly formatted as numbered points
- DO NOT use any markdown formatting or special characters
Format the response as:
1. [First legal point with citation]
2. [Second legal point with citation]
3. [Third legal point with citation]
4. [Fourth legal point with citation]`, issue, insights)
}

func pilPrayersPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a senior advocate drafting a PIL petition. Given the following issue, write 1-2 specific and relevant PRAYERS.
Issue: %s
Additional Context: %s
Generate 1-2 specific prayers that:
- Are directly related to the issue
- Request concrete actions from the authorities
- Include specific timeframes where appropriate
- Be properly formatted as numbered points
- Be concise and to the point
- DO NOT use any markdown formatting or special characters
Format the response as:
1. [First prayer]
2. [Second prayer]`, issue, insights)
}

func rtiInformationPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting an RTI application. Given the following issue, write a clear and specific INFORMATION SOUGHT section.
Issue: %s
Additional Context: %s
Generate 4-5 specific information points that:
- Are clear and precise
- Request specific data or documents
- Be properly formatted as numbered points
- NOT use any markdown formatting or special characters
Format the response as:
1. [First information point]
2. [Second information point]
3. [Third information point]
4. [Fourth information point]
5. [Fifth information point]`, issue, insights)
}

func rtiLegalPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting an RTI application. Given the following issue, write a concise and relevant LEGAL BASIS section.
Issue: %s
Additional Context: %s
Generate 3-4 key legal points that:
- Cite specific sections of RTI Act
- Explain how they apply to the case
- Be properly formatted as numbered points
- NOT use any markdown formatting or special characters
Format the response as:
1. [First legal point with citation]
2. [Second legal point with citation]
3. [Third legal point with citation]
4. [Fourth legal point with citation]`, issue, insights)
}

func rtiDepartmentPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting an RTI application. Given the following issue, determine the appropriate department details.
Issue: %s
Additional Context: %s
Generate:
1. The specific department name
2. Any additional information or requirements
Format the response as:
Department: [department name]
Additional Info: [any additional information]`, issue, insights)
}

func complaintFactsPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting a consumer complaint. Given the following issue, write a concise and relevant FACTS OF THE CASE section.
Issue: %s
Additional Context: %s
Generate 3-4 key points that are most relevant to the case. Each point should:
- Include specific dates and facts
- Be clear and concise
- Focus on the most critical aspects
- Be properly formatted as numbered points
- NOT use any markdown formatting or special characters
Format the response as:
1. [First key point]
2. [Second key point]
3. [Third key point]
4. [Fourth key point]`, issue, insights)
}

func complaintLegalPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting a consumer complaint. Given the following issue, write a concise and relevant LEGAL BASIS section.
Issue: %s
Additional Context: %s
Generate 3-4 key legal points that are most relevant to the case. Each point should:
- Cite specific sections of Consumer Protection Act or relevant laws
- Explain how they apply to the case
- Be properly formatted as numbered points
- NOT use any markdown formatting or special characters
Format the response as:
1. [First legal point with citation]
2. [Second legal point with citation]
3. [Third legal point with citation]
4. [Fourth legal point with citation]`, issue, insights)
}

func complaintAuthorityPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting a consumer complaint. Given the following issue, determine the appropriate authority details.
Issue: %s
Additional Context: %s
Generate:
1. The designation of the authority (e.g., 'The Presiding Officer')
2. The name of the authority (e.g., 'Consumer Disputes Redressal Commission')
3. A clear, concise subject line for the complaint
Format the response as:
Designation: [authority designation]
Name: [authority name]
Subject: [complaint subject]`, issue, insights)
}

func complaintPrayersPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting a consumer complaint. Given the following issue, write specific and relevant PRAYERS.
Issue: %s
Additional Context: %s
Generate 2-3 specific prayers that:
- Are directly related to the issue
- Request concrete actions from the authority
- Include specific timeframes where appropriate
- Be properly formatted as numbered points
- Be concise and to the point
- NOT use any markdown formatting or special characters
Format the response as:
1. [First prayer]
2. [Second prayer]
3. [Third prayer]`, issue, insights)
}

func complaintDocumentsPrompt(issue, insights string) string {
	return fmt.Sprintf(`You are a legal expert drafting a consumer complaint. Given the following issue, list the relevant documents to be enclosed.
Issue: %s
Additional Context: %s
Generate 4-5 specific documents that:
- Are relevant to the case
- Support the claims made
- Be properly formatted as numbered points
- NOT use any markdown formatting or special characters
Format the response as:
1. [First document]
2. [Second document]
3. [Third document]
4. [Fourth document]
5. [Fifth document]`, issue, insights)
}

func translationPrompt(text string) string {
	return fmt.Sprintf("Translate the following legal document to Hindi, keeping all formatting and legal terminology:\n\n%s\n\nHindi:", text)
}
